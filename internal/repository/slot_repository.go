package repository

import (
	"fmt"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/storage"
	"github.com/fmcastro/monitoria/internal/storage/idgen"
)

type SlotRepository struct {
	store *storage.Store
	ids   *idgen.Generator
}

func NewSlotRepository(store *storage.Store, ids *idgen.Generator) *SlotRepository {
	return &SlotRepository{store: store, ids: ids}
}

// List returns all slots, claimed or not, in creation order.
func (r *SlotRepository) List() ([]model.Slot, error) {
	var slots []model.Slot
	if err := r.store.Read(storage.CollectionSlots, &slots); err != nil {
		return nil, fmt.Errorf("read slots: %w", err)
	}
	return slots, nil
}

// GetByID returns the slot with the given id, or nil when no such slot
// exists.
func (r *SlotRepository) GetByID(id int64) (*model.Slot, error) {
	slots, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i], nil
		}
	}
	return nil, nil
}

// Create allocates an id for the slot and appends it to the collection.
// The read and write run back to back with nothing in between, which is
// what keeps the rewrite atomic under the single-goroutine model.
func (r *SlotRepository) Create(slot *model.Slot) error {
	slots, err := r.List()
	if err != nil {
		return err
	}

	slot.ID = r.ids.Next()
	slots = append(slots, *slot)

	if err := r.store.Write(storage.CollectionSlots, slots); err != nil {
		return fmt.Errorf("write slots: %w", err)
	}
	return nil
}

// Update replaces the stored slot carrying the same id and rewrites the
// whole collection. Order of the collection is preserved.
func (r *SlotRepository) Update(slot model.Slot) error {
	slots, err := r.List()
	if err != nil {
		return err
	}

	found := false
	for i := range slots {
		if slots[i].ID == slot.ID {
			slots[i] = slot
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("update slot %d: not in collection", slot.ID)
	}

	if err := r.store.Write(storage.CollectionSlots, slots); err != nil {
		return fmt.Errorf("write slots: %w", err)
	}
	return nil
}
