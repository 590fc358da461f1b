package dto

import "time"

const (
	NarrativeSourceVertex = "vertex"
	NarrativeSourceRules  = "rules"
)

type NarrativeResponse struct {
	Narrative string    `json:"narrative"`
	Source    string    `json:"source"`
	Cached    bool      `json:"cached"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
