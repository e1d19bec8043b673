package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/validation"
)

func TestCreateRequiresAllFields(t *testing.T) {
	tests := []struct {
		name                string
		subject, date, tod  string
		missing             string
	}{
		{"empty subject", "", "2024-05-01", "10:00", "subject"},
		{"empty date", "Algebra", "", "10:00", "date"},
		{"empty time", "Algebra", "2024-05-01", "", "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.slots.Create("ana", tt.subject, tt.date, tt.tod)
			require.Error(t, err)
			assert.True(t, validation.IsValidation(err))
			assert.Contains(t, err.Error(), tt.missing)

			// failed creation must leave the collection untouched
			slots, err := env.slotRepo.List()
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestCreateAllocatesUniqueIDs(t *testing.T) {
	env := newTestEnv(t)

	seen := make(map[int64]bool)
	for i := 0; i < 20; i++ {
		slot, err := env.slots.Create("ana", "Algebra", "2024-05-01", "10:00")
		require.NoError(t, err)
		assert.False(t, slot.Claimed)
		assert.Empty(t, slot.Student)
		assert.False(t, seen[slot.ID], "id %d allocated twice", slot.ID)
		seen[slot.ID] = true
	}
}

func TestCreateIsImmediatelyVisible(t *testing.T) {
	env := newTestEnv(t)

	slot, err := env.slots.Create("ana", "Algebra", "2024-05-01", "10:00")
	require.NoError(t, err)

	available, err := env.slots.ListAvailable(model.SubjectFilterAll)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, slot.ID, available[0].ID)
}

func TestListAvailableFilters(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.slots.Create("ana", "Algebra", "2024-05-01", "10:00")
	require.NoError(t, err)
	_, err = env.slots.Create("rui", "Calculus", "2024-05-02", "11:00")
	require.NoError(t, err)

	all, err := env.slots.ListAvailable(model.SubjectFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	algebra, err := env.slots.ListAvailable("Algebra")
	require.NoError(t, err)
	require.Len(t, algebra, 1)
	assert.Equal(t, "Algebra", algebra[0].Subject)

	// exact, case-sensitive match only
	lower, err := env.slots.ListAvailable("algebra")
	require.NoError(t, err)
	assert.Empty(t, lower)

	none, err := env.slots.ListAvailable("Geometry")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListAvailableKeepsCreationOrder(t *testing.T) {
	env := newTestEnv(t)

	// created out of chronological order on purpose: the listing must not
	// re-sort by date or time
	dates := []string{"2024-05-03", "2024-05-01", "2024-05-02"}
	for _, d := range dates {
		_, err := env.slots.Create("ana", "Algebra", d, "10:00")
		require.NoError(t, err)
	}

	available, err := env.slots.ListAvailable(model.SubjectFilterAll)
	require.NoError(t, err)
	require.Len(t, available, 3)
	for i, d := range dates {
		assert.Equal(t, d, available[i].Date)
	}
}

func TestListByInstructor(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.slots.Create("ana", "Algebra", "2024-05-01", "10:00")
	require.NoError(t, err)
	claimedSlot, err := env.slots.Create("ana", "Algebra", "2024-05-01", "11:00")
	require.NoError(t, err)
	_, err = env.slots.Create("rui", "Calculus", "2024-05-02", "11:00")
	require.NoError(t, err)

	_, err = env.slots.Claim(claimedSlot.ID, "bo")
	require.NoError(t, err)

	mine, err := env.slots.ListByInstructor("ana")
	require.NoError(t, err)
	require.Len(t, mine, 2, "claimed slots still belong to the instructor listing")
	assert.False(t, mine[0].Claimed)
	assert.True(t, mine[1].Claimed)

	nobody, err := env.slots.ListByInstructor("zeca")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

func TestClaimLifecycle(t *testing.T) {
	env := newTestEnv(t)

	slot, err := env.slots.Create("ana", "Algebra", "2024-05-01", "10:00")
	require.NoError(t, err)

	claimed, err := env.slots.Claim(slot.ID, "bo")
	require.NoError(t, err)
	assert.True(t, claimed.Claimed)
	assert.Equal(t, "bo", claimed.Student)

	available, err := env.slots.ListAvailable(model.SubjectFilterAll)
	require.NoError(t, err)
	assert.Empty(t, available, "claimed slot must leave the availability projection")
}

func TestClaimIsOneWay(t *testing.T) {
	env := newTestEnv(t)

	slot, err := env.slots.Create("ana", "Algebra", "2024-05-01", "10:00")
	require.NoError(t, err)

	_, err = env.slots.Claim(slot.ID, "bo")
	require.NoError(t, err)

	// second claimant observes the conflict, not a success and not a crash
	_, err = env.slots.Claim(slot.ID, "cid")
	require.ErrorIs(t, err, ErrSlotAlreadyClaimed)

	stored, err := env.slotRepo.GetByID(slot.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Claimed)
	assert.Equal(t, "bo", stored.Student, "first claimant must never be overwritten")
}

func TestClaimUnknownSlot(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.slots.Claim(12345, "bo")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
