package panels

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/controller/formatting"
	"github.com/fmcastro/monitoria/internal/service"
)

// Admin is the administrator panel: it registers instructors and
// subjects and shows both catalogs.
type Admin struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

func NewAdmin(catalog *service.CatalogService, logger *zap.Logger) *Admin {
	return &Admin{catalog: catalog, logger: logger}
}

// AddInstructor registers an instructor and confirms it.
func (p *Admin) AddInstructor(w io.Writer, name string) error {
	instructor, err := p.catalog.AddInstructor(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Instructor %q registered.\n", instructor.Name)
	return nil
}

// AddSubject registers a subject and confirms it.
func (p *Admin) AddSubject(w io.Writer, name string) error {
	subject, err := p.catalog.AddSubject(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Subject %q registered.\n", subject.Name)
	return nil
}

// RenderCatalogs prints both catalogs.
func (p *Admin) RenderCatalogs(w io.Writer) error {
	instructors, err := p.catalog.ListInstructors()
	if err != nil {
		return err
	}
	subjects, err := p.catalog.ListSubjects()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Instructors:")
	if len(instructors) == 0 {
		fmt.Fprintln(w, "  (none yet)")
	}
	for _, instructor := range instructors {
		fmt.Fprintf(w, "  • %s\n", instructor.Name)
	}

	fmt.Fprintln(w, "Subjects:")
	if len(subjects) == 0 {
		fmt.Fprintln(w, "  (none yet)")
	}
	names := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		names = append(names, subject.Name)
	}
	fmt.Fprint(w, formatting.NameList(names))
	return nil
}
