package model

// Subject is a discipline offered for tutoring. Slots reference a subject
// by name, not by id, so a subject must exist in the catalog when a slot
// is created but nothing ties them together afterwards.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
