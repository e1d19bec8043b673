package service

import "errors"

// Sentinel errors shared by the services. None of them is fatal; every
// failure path leaves the collections exactly as they were.
var (
	// ErrSlotNotFound means the referenced slot id does not exist at all.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyClaimed means the slot exists but another student got
	// there first. Kept distinct from ErrSlotNotFound so the panel can say
	// "someone already reserved this".
	ErrSlotAlreadyClaimed = errors.New("slot already claimed")

	// ErrLoginRequired signals that the caller must go through the login
	// screen. It is control flow, not a failure.
	ErrLoginRequired = errors.New("login required")
)
