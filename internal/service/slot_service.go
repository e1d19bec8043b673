package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/repository"
	"github.com/fmcastro/monitoria/internal/validation"
)

// SlotService owns the slot lifecycle: creation by instructors, the
// availability projection for students, and the one-way claim transition.
// Nothing else in the program writes the Claimed or Student fields.
type SlotService struct {
	slotRepo *repository.SlotRepository
	validate *validation.Validator
	logger   *zap.Logger
}

func NewSlotService(
	slotRepo *repository.SlotRepository,
	validate *validation.Validator,
	logger *zap.Logger,
) *SlotService {
	return &SlotService{
		slotRepo: slotRepo,
		validate: validate,
		logger:   logger,
	}
}

type createSlotInput struct {
	Subject string `json:"subject" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
}

// Create registers a new available slot for the instructor. Subject, date
// and time are all required; the instructor identity comes from the
// session and is fixed for the life of the slot.
func (s *SlotService) Create(instructor, subject, date, timeOfDay string) (*model.Slot, error) {
	in := createSlotInput{Subject: subject, Date: date, Time: timeOfDay}
	if err := s.validate.Check(in); err != nil {
		return nil, err
	}

	slot := model.Slot{
		Instructor: instructor,
		Subject:    subject,
		Date:       date,
		Time:       timeOfDay,
		Claimed:    false,
	}

	if err := s.slotRepo.Create(&slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("Slot created",
		zap.Int64("slot_id", slot.ID),
		zap.String("instructor", instructor),
		zap.String("subject", subject),
		zap.String("date", date),
		zap.String("time", timeOfDay),
	)

	return &slot, nil
}

// ListAvailable returns every unclaimed slot, narrowed to one subject
// unless the filter is model.SubjectFilterAll. Matching is exact and
// case-sensitive. Slots come back in creation order, not chronological
// order: the listing mirrors storage order on purpose.
func (s *SlotService) ListAvailable(subjectFilter string) ([]model.Slot, error) {
	slots, err := s.slotRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	var available []model.Slot
	for _, slot := range slots {
		if !slot.Available() {
			continue
		}
		if subjectFilter != model.SubjectFilterAll && slot.Subject != subjectFilter {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// ListByInstructor returns all slots created by the given identity,
// claimed or not, in creation order. An empty result just means the
// instructor has not created anything yet.
func (s *SlotService) ListByInstructor(identity string) ([]model.Slot, error) {
	slots, err := s.slotRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	var mine []model.Slot
	for _, slot := range slots {
		if slot.Instructor == identity {
			mine = append(mine, slot)
		}
	}
	return mine, nil
}

// Claim reserves the slot for the student. The lookup runs over all
// slots, not just the available projection, so a stale claim gets the
// precise answer: ErrSlotNotFound when the id never existed,
// ErrSlotAlreadyClaimed when another student won the race. The already-
// claimed check doubles as the optimistic guard if the store is ever
// swapped for a shared one. A repeated claim never overwrites the first
// student.
func (s *SlotService) Claim(slotID int64, student string) (*model.Slot, error) {
	slot, err := s.slotRepo.GetByID(slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if slot.Claimed {
		return nil, ErrSlotAlreadyClaimed
	}

	slot.Claimed = true
	slot.Student = student

	if err := s.slotRepo.Update(*slot); err != nil {
		return nil, fmt.Errorf("claim slot: %w", err)
	}

	s.logger.Info("Slot claimed",
		zap.Int64("slot_id", slot.ID),
		zap.String("student", student),
		zap.String("instructor", slot.Instructor),
		zap.String("subject", slot.Subject),
	)

	return slot, nil
}
