// Package response builds the uniform envelope every successful request
// returns: {statusCode, message, data, meta}.
package response

import (
	"maps"
	"net/http"

	"idn-area/internal/pagination"
	"idn-area/internal/provider"
)

// DefaultMessage is used when a route does not override the message.
const DefaultMessage = "OK"

// Meta is the free-form metadata object of an envelope.
type Meta map[string]any

// Envelope is the outer JSON object of every successful response.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Meta       Meta   `json:"meta,omitempty"`
}

// RecordHook rewrites one record in place before it is written out. It
// receives a pointer to the record.
type RecordHook func(record any)

// Result is what a query operation hands to the transformer. The concrete
// variants are Single, List and Paginated.
type Result interface {
	build(hooks []RecordHook) (data any, meta Meta)
}

// Single wraps one record.
type Single[T any] struct {
	Value T
	Meta  Meta
}

// List wraps a collection; Meta is preserved and gains "total".
type List[T any] struct {
	Items []T
	Meta  Meta
}

// Paginated wraps one page of a collection together with its page links,
// which are nested under meta.pagination.
type Paginated[T any] struct {
	Items      []T
	Meta       Meta
	Pagination pagination.Links
}

// FromPage renders page links for p using tmpl. The size of the whole
// matching collection goes to meta.totalItems and meta.totalPages, since
// meta.total counts only the records on this page.
func FromPage[T any](p pagination.Page[T], tmpl pagination.LinkTemplate) Paginated[T] {
	return Paginated[T]{
		Items: p.Data,
		Meta: Meta{
			"totalItems": p.Meta.Total,
			"totalPages": p.Meta.TotalPages,
		},
		Pagination: tmpl.Links(p.Meta),
	}
}

func (r Single[T]) build(hooks []RecordHook) (any, Meta) {
	v := r.Value
	apply(hooks, &v)
	return v, cloneMeta(r.Meta)
}

func (r List[T]) build(hooks []RecordHook) (any, Meta) {
	items := applyAll(hooks, r.Items)
	meta := cloneMeta(r.Meta)
	if meta == nil {
		meta = Meta{}
	}
	meta["total"] = len(items)
	return items, meta
}

func (r Paginated[T]) build(hooks []RecordHook) (any, Meta) {
	data, meta := List[T]{Items: r.Items, Meta: r.Meta}.build(hooks)
	meta["pagination"] = r.Pagination
	return data, meta
}

func apply[T any](hooks []RecordHook, v *T) {
	for _, h := range hooks {
		h(v)
	}
}

// applyAll works on a copy so the caller's slice is never modified. A nil
// slice becomes an empty one so it serializes as [].
func applyAll[T any](hooks []RecordHook, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(hooks) == 0 {
		return out
	}
	for i := range out {
		apply(hooks, &out[i])
	}
	return out
}

func cloneMeta(m Meta) Meta {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Transformer turns results into envelopes.
type Transformer struct {
	hooks []RecordHook
}

// NewTransformer returns a transformer running hooks on every record.
func NewTransformer(hooks ...RecordHook) *Transformer {
	return &Transformer{hooks: hooks}
}

// ForCapability returns a transformer with the record hooks the backend needs.
func ForCapability(c provider.Capability) *Transformer {
	return NewTransformer(HooksFor(c)...)
}

// Transform wraps r. An empty message becomes DefaultMessage and a zero
// status becomes 200.
func (t *Transformer) Transform(status int, message string, r Result) Envelope {
	if status == 0 {
		status = http.StatusOK
	}
	if message == "" {
		message = DefaultMessage
	}
	env := Envelope{StatusCode: status, Message: message}
	if r == nil {
		return env
	}
	var hooks []RecordHook
	if t != nil {
		hooks = t.hooks
	}
	data, meta := r.build(hooks)
	env.Data = data
	if len(meta) > 0 {
		env.Meta = meta
	}
	return env
}

// OK is Transform with status 200.
func (t *Transformer) OK(message string, r Result) Envelope {
	return t.Transform(http.StatusOK, message, r)
}
