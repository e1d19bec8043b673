// Package validation wires go-playground/validator with translated,
// json-tag-named field messages and folds the result into a single error
// type the panels can render.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError describes what is wrong with one input field.
type FieldError struct {
	Field   string
	Message string
}

// Error is a recoverable bad-input error. It never accompanies a state
// change: a failed validation leaves every collection untouched.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

// Validator checks tagged input structs.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a validator with English messages and json tag names.
func New() *Validator {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	// Report errors against json field names, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate, trans: trans}
}

// Check validates the struct and returns an *Error listing every failing
// field, or nil when the input is fine.
func (v *Validator) Check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	out := &Error{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(v.trans),
		})
	}
	return out
}
