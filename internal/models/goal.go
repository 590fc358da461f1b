package models

import "time"

type Goal struct {
	GoalID    string    `firestore:"goalId" json:"goalId"`
	Name      string    `firestore:"name" json:"name"`
	Kind      string    `firestore:"kind" json:"kind"`
	Target    float64   `firestore:"target" json:"target"`
	Current   float64   `firestore:"current" json:"current"`
	Deadline  string    `firestore:"deadline,omitempty" json:"deadline,omitempty"` // YYYY-MM-DD, empty when open-ended
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
