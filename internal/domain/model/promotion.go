package model

// Promotion is an admin-managed marketing campaign.
type Promotion struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}
