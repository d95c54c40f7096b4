package response

import (
	"travel-booking/internal/domain/draft"
)

type DraftResponse struct {
	Kind       string         `json:"kind"`
	ResourceID string         `json:"resource_id"`
	Step       string         `json:"step"`
	Data       map[string]any `json:"data"`
	UpdatedAt  int64          `json:"updated_at"`
}

func FromDraft(d *draft.Draft) *DraftResponse {
	data := d.Data
	if data == nil {
		data = map[string]any{}
	}
	return &DraftResponse{
		Kind:       d.Key.Kind.String(),
		ResourceID: d.Key.ResourceID.String(),
		Step:       string(d.Step),
		Data:       data,
		UpdatedAt:  d.UpdatedAt.Unix(),
	}
}
