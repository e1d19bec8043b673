package model

// Instructor is a tutor registered by the administrator.
// Instructors are never renamed or removed once created.
type Instructor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
