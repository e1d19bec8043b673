package model

// SubjectFilterAll is the sentinel filter value that disables subject
// narrowing in availability listings.
const SubjectFilterAll = "all"

// Slot is a single bookable tutoring time entry. The ID doubles as the
// creation timestamp in Unix milliseconds and is strictly increasing
// within a process.
//
// Claimed is a one-way latch: once a student reserves the slot it never
// becomes available again, and Student is only ever set together with
// Claimed. SlotService.Claim is the sole writer of both fields.
type Slot struct {
	ID         int64  `json:"id"`
	Instructor string `json:"instructor"`
	Subject    string `json:"subject"`
	Date       string `json:"date"` // ISO date, e.g. "2024-05-01"
	Time       string `json:"time"` // free-form "HH:MM"
	Claimed    bool   `json:"claimed"`
	Student    string `json:"student,omitempty"`
}

// Available reports whether the slot can still be claimed.
func (s Slot) Available() bool {
	return !s.Claimed
}
