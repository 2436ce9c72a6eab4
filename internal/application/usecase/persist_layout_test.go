package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
)

const videoKey entity.StorageKey = "video-editor-layout"

func TestLayoutPersistence_Load(t *testing.T) {
	stored := entity.LayoutState{
		Root: entity.NewSplitNode("root", entity.SplitHorizontal, []*entity.LayoutNode{
			entity.NewPanelNode("n-preview", "preview"),
			entity.NewPanelNode("n-timeline", "timeline"),
		}, []float64{30, 70}),
		FloatingWindows: []entity.FloatingWindow{{ID: "w1", PanelID: "inspector"}},
	}

	corrupt := entity.SnapshotFromState(videoKey, entity.NewLayoutState(videoDefault()))
	corrupt.Root.Sizes = []float64{10, 10}

	future := entity.SnapshotFromState(videoKey, stored)
	future.Version = entity.LayoutSnapshotVersion + 1

	tests := []struct {
		name        string
		snapshot    *entity.LayoutSnapshot
		err         error
		wantDefault bool
	}{
		{name: "stored layout", snapshot: entity.SnapshotFromState(videoKey, stored)},
		{name: "nothing stored", wantDefault: true},
		{name: "storage error", err: errors.New("disk on fire"), wantDefault: true},
		{name: "sizes do not balance", snapshot: corrupt, wantDefault: true},
		{name: "unknown version", snapshot: future, wantDefault: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockLayoutRepository(t)
			repo.EXPECT().Get(mock.Anything, videoKey).Return(tt.snapshot, tt.err)
			uc := usecase.NewLayoutPersistenceUseCase(repo)

			out := uc.Load(testCtx(), videoKey, videoDefault())

			assert.Equal(t, tt.wantDefault, out.FromDefault)
			require.NoError(t, out.State.Validate())
			if tt.wantDefault {
				assert.Equal(t, videoDefault(), out.State.Root)
				assert.Empty(t, out.State.FloatingWindows)
				return
			}
			assert.Equal(t, stored.Root, out.State.Root)
			assert.Equal(t, stored.FloatingWindows, out.State.FloatingWindows)
		})
	}
}

func TestLayoutPersistence_LoadDoesNotShareDefault(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Get(mock.Anything, videoKey).Return(nil, nil)
	uc := usecase.NewLayoutPersistenceUseCase(repo)
	def := videoDefault()

	out := uc.Load(testCtx(), videoKey, def)
	out.State.Root.Sizes[0] = 1

	assert.Equal(t, 68.0, def.Sizes[0])
}

func TestLayoutPersistence_Save(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	state := entity.NewLayoutState(videoDefault())
	state.IsDragging = true
	state.FloatingWindows = []entity.FloatingWindow{{ID: "w1", PanelID: "inspector", SnapInfo: &entity.SnapInfo{}}}

	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *entity.LayoutSnapshot) bool {
		return s.StorageKey == videoKey &&
			s.Version == entity.LayoutSnapshotVersion &&
			len(s.FloatingWindows) == 1 &&
			s.FloatingWindows[0].SnapInfo == nil &&
			s.Root != state.Root
	})).Return(nil)

	uc := usecase.NewLayoutPersistenceUseCase(repo)
	require.NoError(t, uc.Save(testCtx(), videoKey, state))
}

func TestLayoutPersistence_SaveErrors(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))
	uc := usecase.NewLayoutPersistenceUseCase(repo)

	err := uc.Save(testCtx(), videoKey, entity.NewLayoutState(videoDefault()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	assert.Error(t, uc.Save(testCtx(), "", entity.NewLayoutState(videoDefault())))
	assert.Error(t, uc.Save(testCtx(), videoKey, entity.LayoutState{}))
}

func TestLayoutPersistence_ImportRejectsInvalid(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	uc := usecase.NewLayoutPersistenceUseCase(repo)

	snap := entity.SnapshotFromState(videoKey, entity.NewLayoutState(videoDefault()))
	snap.FloatingWindows = []entity.FloatingWindow{{ID: "w1", PanelID: "preview"}}

	err := uc.Import(testCtx(), videoKey, snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "present in tree and floating")
}

func TestLayoutPersistence_ImportAndReset(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().Delete(mock.Anything, videoKey).Return(nil)
	uc := usecase.NewLayoutPersistenceUseCase(repo)

	snap := entity.SnapshotFromState(videoKey, entity.NewLayoutState(videoDefault()))
	require.NoError(t, uc.Import(testCtx(), videoKey, snap))
	require.NoError(t, uc.Reset(testCtx(), videoKey))
}
