package models

// Record carries the identifier a document store attaches to every row.
// Relational backends leave it nil.
type Record struct {
	InternalID any `json:"id,omitempty"`
}

// ClearInternalID drops the store identifier before presentation.
func (r *Record) ClearInternalID() { r.InternalID = nil }

// InternalIDCarrier is implemented by every record that may expose a store id.
type InternalIDCarrier interface {
	ClearInternalID()
}
