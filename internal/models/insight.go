package models

import "time"

// Insight is a cached narrative, one per user. ExpiresAt also drives the
// Firestore TTL policy on the collection.
type Insight struct {
	Narrative string    `firestore:"narrative" json:"narrative"`
	Source    string    `firestore:"source" json:"source"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `firestore:"expiresAt" json:"expiresAt"`
}
