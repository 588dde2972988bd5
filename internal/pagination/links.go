package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// Links are the rendered page URLs nested under meta.pagination.
type Links struct {
	First    string  `json:"first"`
	Last     string  `json:"last"`
	Current  *string `json:"current"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// LinkTemplate renders page URLs for one route. Route may contain {name}
// placeholders filled from Params; Query holds the caller's other query
// parameters, which are kept on every link.
type LinkTemplate struct {
	Route  string
	Params map[string]string
	Query  url.Values
}

// URL renders the link for one page.
func (t LinkTemplate) URL(page, limit int) string {
	path := t.Route
	for k, v := range t.Params {
		path = strings.ReplaceAll(path, "{"+k+"}", url.PathEscape(v))
	}

	q := url.Values{}
	for k, vs := range t.Query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return path + "?" + q.Encode()
}

// Links renders every link described by meta.
func (t LinkTemplate) Links(meta Meta) Links {
	link := func(p *int) *string {
		if p == nil {
			return nil
		}
		s := t.URL(*p, meta.Limit)
		return &s
	}
	return Links{
		First:    t.URL(meta.Pages.First, meta.Limit),
		Last:     t.URL(meta.Pages.Last, meta.Limit),
		Current:  link(meta.Pages.Current),
		Previous: link(meta.Pages.Previous),
		Next:     link(meta.Pages.Next),
	}
}
