package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/controller/panels"
	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/service"
)

// errQuit ends the dashboard loop; it never leaves Run.
var errQuit = errors.New("quit")

// Dashboard is the interactive surface. It owns the login screen and
// hands each established session to exactly one role panel. All the
// scheduling decisions live in the services; the dashboard only reads
// commands and renders results.
type Dashboard struct {
	sessions   *service.SessionService
	admin      *panels.Admin
	instructor *panels.Instructor
	student    *panels.Student
	in         *bufio.Scanner
	out        io.Writer
	logger     *zap.Logger
}

func NewDashboard(
	sessions *service.SessionService,
	catalog *service.CatalogService,
	slots *service.SlotService,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *Dashboard {
	return &Dashboard{
		sessions:   sessions,
		admin:      panels.NewAdmin(catalog, logger),
		instructor: panels.NewInstructor(slots, catalog, logger),
		student:    panels.NewStudent(slots, catalog, logger),
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
	}
}

// Run drives the session loop until the user quits or input ends.
func (d *Dashboard) Run(ctx context.Context) error {
	fmt.Fprintln(d.out, "📚 Monitoria — tutoring session scheduler")

	for ctx.Err() == nil {
		session, err := d.sessions.Require()
		if errors.Is(err, service.ErrLoginRequired) {
			if err := d.loginScreen(); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		switch session.Role {
		case model.RoleAdmin:
			err = d.adminLoop(session)
		case model.RoleInstructor:
			err = d.instructorLoop(session)
		case model.RoleStudent:
			err = d.studentLoop(session)
		default:
			// Current already filters unknown roles; kept as the same
			// defensive fallback the login dispatch always had.
			err = d.sessions.Logout()
		}
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}

	return nil
}

// loginScreen asks for a role and an identity. Any username is accepted
// and trusted; there is no password.
func (d *Dashboard) loginScreen() error {
	fmt.Fprintln(d.out, "\n— Login —")

	roleRaw, err := d.prompt("Role (admin/instructor/student, q to quit): ")
	if err != nil {
		return err
	}
	if roleRaw == "q" {
		return errQuit
	}

	role, parseErr := model.ParseRole(roleRaw)
	if parseErr != nil {
		fmt.Fprintln(d.out, "❌ Unknown role. Use admin, instructor or student.")
		return nil
	}

	identity, err := d.prompt("Username: ")
	if err != nil {
		return err
	}

	if _, err := d.sessions.Login(role, identity); err != nil {
		fmt.Fprintln(d.out, ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(d.out, "Welcome, %s!\n", identity)
	return nil
}

func (d *Dashboard) adminLoop(session *model.Session) error {
	for {
		fmt.Fprintf(d.out, "\n— Admin panel (%s) —\n", session.Identity)
		if err := d.admin.RenderCatalogs(d.out); err != nil {
			fmt.Fprintln(d.out, ErrorMessage(err))
		}

		choice, err := d.prompt("[1] add instructor  [2] add subject  [0] logout  [q] quit: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := d.prompt("Instructor name: ")
			if err != nil {
				return err
			}
			if err := d.admin.AddInstructor(d.out, name); err != nil {
				fmt.Fprintln(d.out, ErrorMessage(err))
			}
		case "2":
			name, err := d.prompt("Subject name: ")
			if err != nil {
				return err
			}
			if err := d.admin.AddSubject(d.out, name); err != nil {
				fmt.Fprintln(d.out, ErrorMessage(err))
			}
		case "0":
			return d.logout()
		case "q":
			return errQuit
		default:
			fmt.Fprintln(d.out, "Unknown option.")
		}
	}
}

func (d *Dashboard) instructorLoop(session *model.Session) error {
	for {
		fmt.Fprintf(d.out, "\n— Instructor panel (%s) —\n", session.Identity)
		if err := d.instructor.RenderSchedule(d.out, session.Identity); err != nil {
			fmt.Fprintln(d.out, ErrorMessage(err))
		}

		choice, err := d.prompt("[1] create slot  [0] logout  [q] quit: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := d.createSlot(session); err != nil {
				return err
			}
		case "0":
			return d.logout()
		case "q":
			return errQuit
		default:
			fmt.Fprintln(d.out, "Unknown option.")
		}
	}
}

func (d *Dashboard) createSlot(session *model.Session) error {
	hasSubjects, err := d.instructor.RenderSubjectChoices(d.out)
	if err != nil {
		fmt.Fprintln(d.out, ErrorMessage(err))
		return nil
	}
	if !hasSubjects {
		return nil
	}

	subject, err := d.prompt("Subject: ")
	if err != nil {
		return err
	}
	date, err := d.prompt("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	timeOfDay, err := d.prompt("Time (HH:MM): ")
	if err != nil {
		return err
	}

	if err := d.instructor.CreateSlot(d.out, session.Identity, subject, date, timeOfDay); err != nil {
		fmt.Fprintln(d.out, ErrorMessage(err))
	}
	return nil
}

func (d *Dashboard) studentLoop(session *model.Session) error {
	filter := model.SubjectFilterAll

	for {
		fmt.Fprintf(d.out, "\n— Student panel (%s) — filter: %s\n", session.Identity, filter)
		if err := d.student.RenderAvailable(d.out, filter); err != nil {
			fmt.Fprintln(d.out, ErrorMessage(err))
		}

		choice, err := d.prompt("[1] reserve slot  [2] change filter  [0] logout  [q] quit: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := d.claimSlot(session); err != nil {
				return err
			}
		case "2":
			if err := d.student.RenderFilterChoices(d.out); err != nil {
				fmt.Fprintln(d.out, ErrorMessage(err))
				continue
			}
			next, err := d.prompt("Subject filter: ")
			if err != nil {
				return err
			}
			if next == "" {
				next = model.SubjectFilterAll
			}
			filter = next
		case "0":
			return d.logout()
		case "q":
			return errQuit
		default:
			fmt.Fprintln(d.out, "Unknown option.")
		}
	}
}

func (d *Dashboard) claimSlot(session *model.Session) error {
	raw, err := d.prompt("Slot id: ")
	if err != nil {
		return err
	}
	slotID, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		fmt.Fprintln(d.out, "❌ Slot id must be a number.")
		return nil
	}

	// cancel here means no state change at all
	confirm, err := d.prompt("Reserve this session? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(d.out, "Reservation canceled.")
		return nil
	}

	if err := d.student.Claim(d.out, slotID, session.Identity); err != nil {
		fmt.Fprintln(d.out, ErrorMessage(err))
	}
	return nil
}

func (d *Dashboard) logout() error {
	if err := d.sessions.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(d.out, "Logged out.")
	return nil
}

// prompt prints the question and reads one trimmed line. End of input
// quits the dashboard.
func (d *Dashboard) prompt(question string) (string, error) {
	fmt.Fprint(d.out, question)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errQuit
	}
	return strings.TrimSpace(d.in.Text()), nil
}
