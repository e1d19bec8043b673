package repository

import (
	"fmt"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/storage"
	"github.com/fmcastro/monitoria/internal/storage/idgen"
)

type InstructorRepository struct {
	store *storage.Store
	ids   *idgen.Generator
}

func NewInstructorRepository(store *storage.Store, ids *idgen.Generator) *InstructorRepository {
	return &InstructorRepository{store: store, ids: ids}
}

// List returns all instructors in creation order.
func (r *InstructorRepository) List() ([]model.Instructor, error) {
	var instructors []model.Instructor
	if err := r.store.Read(storage.CollectionInstructors, &instructors); err != nil {
		return nil, fmt.Errorf("read instructors: %w", err)
	}
	return instructors, nil
}

// Create allocates an id for the instructor and appends it to the
// collection.
func (r *InstructorRepository) Create(instructor *model.Instructor) error {
	instructors, err := r.List()
	if err != nil {
		return err
	}

	instructor.ID = r.ids.Next()
	instructors = append(instructors, *instructor)

	if err := r.store.Write(storage.CollectionInstructors, instructors); err != nil {
		return fmt.Errorf("write instructors: %w", err)
	}
	return nil
}
