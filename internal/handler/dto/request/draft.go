package request

type SaveDraftRequest struct {
	Step string         `json:"step" binding:"required,draft_step"`
	Data map[string]any `json:"data"`
}
