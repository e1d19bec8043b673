package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/repository"
	"github.com/fmcastro/monitoria/internal/validation"
)

// CatalogService backs the admin panel: registering instructors and
// subjects. Both are append-only; there is no rename or delete path, so
// slots referencing a subject by name can never be orphaned.
type CatalogService struct {
	instructorRepo *repository.InstructorRepository
	subjectRepo    *repository.SubjectRepository
	validate       *validation.Validator
	logger         *zap.Logger
}

func NewCatalogService(
	instructorRepo *repository.InstructorRepository,
	subjectRepo *repository.SubjectRepository,
	validate *validation.Validator,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		instructorRepo: instructorRepo,
		subjectRepo:    subjectRepo,
		validate:       validate,
		logger:         logger,
	}
}

type nameInput struct {
	Name string `json:"name" validate:"required"`
}

// AddInstructor registers an instructor under the given name.
func (s *CatalogService) AddInstructor(name string) (*model.Instructor, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Check(nameInput{Name: name}); err != nil {
		return nil, err
	}

	instructor := model.Instructor{Name: name}
	if err := s.instructorRepo.Create(&instructor); err != nil {
		return nil, fmt.Errorf("add instructor: %w", err)
	}

	s.logger.Info("Instructor registered",
		zap.Int64("instructor_id", instructor.ID),
		zap.String("name", instructor.Name),
	)
	return &instructor, nil
}

// AddSubject registers a subject under the given name.
func (s *CatalogService) AddSubject(name string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Check(nameInput{Name: name}); err != nil {
		return nil, err
	}

	subject := model.Subject{Name: name}
	if err := s.subjectRepo.Create(&subject); err != nil {
		return nil, fmt.Errorf("add subject: %w", err)
	}

	s.logger.Info("Subject registered",
		zap.Int64("subject_id", subject.ID),
		zap.String("name", subject.Name),
	)
	return &subject, nil
}

// ListInstructors returns the instructor catalog in creation order.
func (s *CatalogService) ListInstructors() ([]model.Instructor, error) {
	instructors, err := s.instructorRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// ListSubjects returns the subject catalog in creation order.
func (s *CatalogService) ListSubjects() ([]model.Subject, error) {
	subjects, err := s.subjectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// HasSubject checks the catalog for an exact name match.
func (s *CatalogService) HasSubject(name string) (bool, error) {
	ok, err := s.subjectRepo.ExistsByName(name)
	if err != nil {
		return false, fmt.Errorf("check subject: %w", err)
	}
	return ok, nil
}

// SubjectNames returns just the catalog names, for selectors and the
// student filter options.
func (s *CatalogService) SubjectNames() ([]string, error) {
	subjects, err := s.ListSubjects()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		names = append(names, subject.Name)
	}
	return names, nil
}
