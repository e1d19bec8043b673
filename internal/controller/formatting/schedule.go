package formatting

import (
	"fmt"
	"strings"

	"github.com/fmcastro/monitoria/internal/model"
)

// InstructorSlotLine renders one entry of the instructor's own schedule.
func InstructorSlotLine(slot model.Slot) string {
	display := SlotStatusDisplay(slot)
	line := fmt.Sprintf("%s %s — %s (%s)",
		display.Marker, slot.Subject, FormatWhen(slot.Date, slot.Time), display.Text)
	if slot.Claimed && slot.Student != "" {
		line += fmt.Sprintf(" — student: %s", slot.Student)
	}
	return line
}

// AvailableSlotCard renders one claimable slot the way the student panel
// lists them, with the id the student types to claim it.
func AvailableSlotCard(slot model.Slot) string {
	return fmt.Sprintf("[%d] %s — Prof. %s — %s",
		slot.ID, slot.Subject, slot.Instructor, FormatWhen(slot.Date, slot.Time))
}

// NameList renders a simple bulleted list of names.
func NameList(names []string) string {
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  • %s\n", name)
	}
	return b.String()
}
