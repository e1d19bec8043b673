package panels

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/controller/formatting"
	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/service"
)

// Student is the student panel: it lists claimable slots, optionally
// narrowed to one subject, and performs the claim.
type Student struct {
	slots   *service.SlotService
	catalog *service.CatalogService
	logger  *zap.Logger
}

func NewStudent(slots *service.SlotService, catalog *service.CatalogService, logger *zap.Logger) *Student {
	return &Student{slots: slots, catalog: catalog, logger: logger}
}

// RenderFilterChoices prints the filter options: the catalog names plus
// the "all" sentinel.
func (p *Student) RenderFilterChoices(w io.Writer) error {
	names, err := p.catalog.SubjectNames()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Filter options: %s", model.SubjectFilterAll)
	for _, name := range names {
		fmt.Fprintf(w, ", %s", name)
	}
	fmt.Fprintln(w)
	return nil
}

// RenderAvailable prints the claimable slots for the filter.
func (p *Student) RenderAvailable(w io.Writer, subjectFilter string) error {
	slots, err := p.slots.ListAvailable(subjectFilter)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		fmt.Fprintln(w, "No available slots found for this subject.")
		return nil
	}

	for _, slot := range slots {
		fmt.Fprintf(w, "  %s\n", formatting.AvailableSlotCard(slot))
	}
	return nil
}

// Claim reserves the slot for the identity. The confirmation step
// happens before this is called; once here, the claim is committed.
func (p *Student) Claim(w io.Writer, slotID int64, identity string) error {
	slot, err := p.slots.Claim(slotID, identity)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Session reserved: %s with Prof. %s — %s\n",
		slot.Subject, slot.Instructor, formatting.FormatWhen(slot.Date, slot.Time))
	return nil
}
