package response

import (
	"idn-area/internal/domain/models"
	"idn-area/internal/provider"
)

// HooksFor returns the record hooks a backend needs before presentation.
// Document stores expose their internal id on every record, which is not
// part of the public shape.
func HooksFor(c provider.Capability) []RecordHook {
	var hooks []RecordHook
	if c.DocumentStore {
		hooks = append(hooks, StripInternalID)
	}
	return hooks
}

// StripInternalID clears the store id of records that carry one.
func StripInternalID(record any) {
	if r, ok := record.(models.InternalIDCarrier); ok {
		r.ClearInternalID()
	}
}
