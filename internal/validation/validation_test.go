package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Subject string `json:"subject" validate:"required"`
	Time    string `json:"time" validate:"required"`
}

func TestCheckPasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Check(sampleInput{Subject: "Algebra", Time: "10:00"}))
}

func TestCheckReportsMissingFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Check(sampleInput{Subject: "Algebra"})
	require.Error(t, err)
	require.True(t, IsValidation(err))

	verr := err.(*Error)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "time", verr.Fields[0].Field)
	assert.Contains(t, err.Error(), "time")
}

func TestIsValidationOnOtherErrors(t *testing.T) {
	assert.False(t, IsValidation(assert.AnError))
}
