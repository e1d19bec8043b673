package service

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fmcastro/monitoria/internal/repository"
	"github.com/fmcastro/monitoria/internal/storage"
	"github.com/fmcastro/monitoria/internal/storage/idgen"
	"github.com/fmcastro/monitoria/internal/validation"
)

// testEnv wires every service over an in-memory store, the same way main
// wires them over the real filesystem.
type testEnv struct {
	store    *storage.Store
	slots    *SlotService
	sessions *SessionService
	catalog  *CatalogService
	slotRepo *repository.SlotRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.New(afero.NewMemMapFs(), "data", zap.NewNop())
	require.NoError(t, err)

	clock := time.UnixMilli(1700000000000)
	ids := idgen.NewWithClock(func() time.Time { return clock })
	validate := validation.New()
	logger := zap.NewNop()

	slotRepo := repository.NewSlotRepository(store, ids)

	return &testEnv{
		store:    store,
		slotRepo: slotRepo,
		slots:    NewSlotService(slotRepo, validate, logger),
		sessions: NewSessionService(repository.NewSessionRepository(store), validate, logger),
		catalog: NewCatalogService(
			repository.NewInstructorRepository(store, ids),
			repository.NewSubjectRepository(store, ids),
			validate,
			logger,
		),
	}
}
