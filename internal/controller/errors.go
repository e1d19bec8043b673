package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fmcastro/monitoria/internal/service"
	"github.com/fmcastro/monitoria/internal/validation"
)

// ErrorMessage maps a service error onto the notice shown to the user.
// Every error here is recoverable: the panel prints the notice and keeps
// going.
func ErrorMessage(err error) string {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		parts := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			parts = append(parts, fmt.Sprintf("%s — %s", f.Field, f.Message))
		}
		return "❌ " + strings.Join(parts, "; ")
	case errors.Is(err, service.ErrSlotNotFound):
		return "❌ That slot does not exist."
	case errors.Is(err, service.ErrSlotAlreadyClaimed):
		return "❌ Someone already reserved this slot."
	default:
		return "❌ Something went wrong. Please try again."
	}
}
