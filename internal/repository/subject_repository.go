package repository

import (
	"fmt"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/storage"
	"github.com/fmcastro/monitoria/internal/storage/idgen"
)

type SubjectRepository struct {
	store *storage.Store
	ids   *idgen.Generator
}

func NewSubjectRepository(store *storage.Store, ids *idgen.Generator) *SubjectRepository {
	return &SubjectRepository{store: store, ids: ids}
}

// List returns all subjects in creation order.
func (r *SubjectRepository) List() ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.store.Read(storage.CollectionSubjects, &subjects); err != nil {
		return nil, fmt.Errorf("read subjects: %w", err)
	}
	return subjects, nil
}

// Create allocates an id for the subject and appends it to the collection.
func (r *SubjectRepository) Create(subject *model.Subject) error {
	subjects, err := r.List()
	if err != nil {
		return err
	}

	subject.ID = r.ids.Next()
	subjects = append(subjects, *subject)

	if err := r.store.Write(storage.CollectionSubjects, subjects); err != nil {
		return fmt.Errorf("write subjects: %w", err)
	}
	return nil
}

// ExistsByName checks whether a subject with the exact name is in the
// catalog.
func (r *SubjectRepository) ExistsByName(name string) (bool, error) {
	subjects, err := r.List()
	if err != nil {
		return false, err
	}
	for _, subject := range subjects {
		if subject.Name == name {
			return true, nil
		}
	}
	return false, nil
}
