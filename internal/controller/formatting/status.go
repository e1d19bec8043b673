package formatting

import "github.com/fmcastro/monitoria/internal/model"

// StatusDisplay pairs a marker with a label for a slot state.
type StatusDisplay struct {
	Marker string
	Text   string
}

// SlotStatusDisplay returns the marker and label for a slot.
func SlotStatusDisplay(slot model.Slot) StatusDisplay {
	if slot.Claimed {
		return StatusDisplay{"🔴", "Reserved"}
	}
	return StatusDisplay{"🟢", "Available"}
}
