package panels

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/controller/formatting"
	"github.com/fmcastro/monitoria/internal/service"
)

// Instructor is the instructor panel: it creates slots under the logged
// in identity and shows the instructor's own schedule, claimed or not.
type Instructor struct {
	slots   *service.SlotService
	catalog *service.CatalogService
	logger  *zap.Logger
}

func NewInstructor(slots *service.SlotService, catalog *service.CatalogService, logger *zap.Logger) *Instructor {
	return &Instructor{slots: slots, catalog: catalog, logger: logger}
}

// RenderSubjectChoices prints the subject catalog the slot form selects
// from. The second return value is false when the catalog is empty and
// there is nothing to create a slot for.
func (p *Instructor) RenderSubjectChoices(w io.Writer) (bool, error) {
	names, err := p.catalog.SubjectNames()
	if err != nil {
		return false, err
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "No subjects in the catalog yet. Ask the administrator to register one.")
		return false, nil
	}
	fmt.Fprintln(w, "Subjects:")
	fmt.Fprint(w, formatting.NameList(names))
	return true, nil
}

// CreateSlot registers a new available slot for the identity. The form
// only offers catalog subjects, so a name outside the catalog is turned
// away here; the registry itself only demands a non-empty subject.
func (p *Instructor) CreateSlot(w io.Writer, identity, subject, date, timeOfDay string) error {
	if subject != "" {
		known, err := p.catalog.HasSubject(subject)
		if err != nil {
			return err
		}
		if !known {
			fmt.Fprintf(w, "❌ Subject %q is not in the catalog. Pick one of the listed subjects.\n", subject)
			return nil
		}
	}

	slot, err := p.slots.Create(identity, subject, date, timeOfDay)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Slot created: %s — %s\n", slot.Subject, formatting.FormatWhen(slot.Date, slot.Time))
	return nil
}

// RenderSchedule prints every slot the identity has created, in creation
// order, with its current status.
func (p *Instructor) RenderSchedule(w io.Writer, identity string) error {
	slots, err := p.slots.ListByInstructor(identity)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		fmt.Fprintln(w, "You have not created any slots yet.")
		return nil
	}

	for _, slot := range slots {
		fmt.Fprintf(w, "  %s\n", formatting.InstructorSlotLine(slot))
	}
	return nil
}
