package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/model"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := New(fs, "data", zap.NewNop())
	require.NoError(t, err)
	return store, fs
}

func TestReadMissingDocument(t *testing.T) {
	store, _ := newTestStore(t)

	var slots []model.Slot
	require.NoError(t, store.Read(CollectionSlots, &slots))
	assert.Empty(t, slots)
}

func TestWriteThenRead(t *testing.T) {
	store, _ := newTestStore(t)

	in := []model.Subject{
		{ID: 1, Name: "Algebra"},
		{ID: 2, Name: "Calculus"},
	}
	require.NoError(t, store.Write(CollectionSubjects, in))

	var out []model.Subject
	require.NoError(t, store.Read(CollectionSubjects, &out))
	assert.Equal(t, in, out)
}

func TestWriteReplacesWholeDocument(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Write(CollectionSubjects, []model.Subject{{ID: 1, Name: "Algebra"}}))
	require.NoError(t, store.Write(CollectionSubjects, []model.Subject{{ID: 2, Name: "Calculus"}}))

	var out []model.Subject
	require.NoError(t, store.Read(CollectionSubjects, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Calculus", out[0].Name)
}

func TestReadCorruptDocumentYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json at all", "!!! definitely not json !!!"},
		{"truncated array", `[{"id": 1, "subject": "Algebra"`},
		{"wrong shape", `{"id": 1}`},
		{"wrong element types", `[{"id": "abc", "claimed": "maybe"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, fs := newTestStore(t)
			require.NoError(t, afero.WriteFile(fs, "data/slots.json", []byte(tt.data), 0o644))

			var slots []model.Slot
			require.NoError(t, store.Read(CollectionSlots, &slots))
			assert.Empty(t, slots)
		})
	}
}

func TestDeleteDocument(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Write(DocumentSession, map[string]string{"identity": "ana"}))
	require.NoError(t, store.Delete(DocumentSession))

	var out map[string]string
	require.NoError(t, store.Read(DocumentSession, &out))
	assert.Empty(t, out)

	// deleting again is fine
	require.NoError(t, store.Delete(DocumentSession))
}

func TestUnclaimedSlotOmitsStudent(t *testing.T) {
	store, fs := newTestStore(t)

	require.NoError(t, store.Write(CollectionSlots, []model.Slot{
		{ID: 1, Instructor: "ana", Subject: "Algebra", Date: "2024-05-01", Time: "10:00"},
	}))

	raw, err := afero.ReadFile(fs, "data/slots.json")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "student")
}
