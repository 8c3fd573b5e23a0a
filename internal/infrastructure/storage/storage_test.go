package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/ports"
)

func sample(id string, solved bool) *domain.Solution {
	s := &domain.Solution{
		ID:         id,
		Name:       "example",
		Part:       1,
		Floors:     [][]string{{"HM", "LiM"}, {"HG"}, {"LiG"}, {}},
		Solved:     solved,
		Cost:       -1,
		Explored:   42,
		DurationMs: 3,
		CreatedAt:  1700000000000000000,
	}
	if solved {
		s.Cost = 11
		s.Moves = []domain.Move{{From: 0, To: 1, Items: []string{"HM"}}}
	}
	return s
}

func backends(t *testing.T) map[string]ports.Storage {
	t.Helper()
	db, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return map[string]ports.Storage{
		"fs":     NewFS(t.TempDir()),
		"sqlite": db,
	}
}

func TestSaveLoadList(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Save(ctx, sample("a", true)))
			require.NoError(t, st.Save(ctx, sample("b", false)))

			got, err := st.Load(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, sample("a", true), got)

			got, err = st.Load(ctx, "b")
			require.NoError(t, err)
			assert.False(t, got.Solved)
			assert.Equal(t, -1, got.Cost)

			ms, err := st.List(ctx)
			require.NoError(t, err)
			require.Len(t, ms, 2)
			ids := []string{ms[0].ID, ms[1].ID}
			assert.ElementsMatch(t, []string{"a", "b"}, ids)
			for _, m := range ms {
				if m.ID == "a" {
					assert.True(t, m.Solved)
					assert.Equal(t, 11, m.Cost)
				}
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := sample("a", true)
			require.NoError(t, st.Save(ctx, s))
			s.Name = "renamed"
			require.NoError(t, st.Save(ctx, s))

			got, err := st.Load(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "renamed", got.Name)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Load(context.Background(), "nope")
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestSaveRequiresID(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, st.Save(context.Background(), sample("", true)))
			assert.Error(t, st.Save(context.Background(), nil))
		})
	}
}

func TestFSLayout(t *testing.T) {
	dir := t.TempDir()
	st := NewFS(dir)
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, sample("a", true)))
	require.NoError(t, st.Save(ctx, sample("b", false)))

	assert.FileExists(t, filepath.Join(dir, "solved", "a.json"))
	assert.FileExists(t, filepath.Join(dir, "unsolved", "b.json"))

	// flat files from older layouts still load
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte(`{"id":"c","floors":[["HG","HM"]],"solved":true}`), 0o644))

	got, err := st.Load(ctx, "c")
	require.NoError(t, err)
	assert.True(t, got.Solved)

	ms, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ms, 3)

	_, err = st.Load(ctx, "../a")
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestFSRejectsIDsOutsideStore(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "data")
	st := NewFS(dir)
	ctx := context.Background()

	for _, id := range []string{"../../escaped", "../escaped", `..\escaped`, "sub/escaped", ".."} {
		t.Run(id, func(t *testing.T) {
			err := st.Save(ctx, sample(id, true))
			assert.ErrorIs(t, err, domain.ErrMalformed)

			_, err = st.Load(ctx, id)
			assert.ErrorIs(t, err, domain.ErrMalformed)
		})
	}
	assert.NoFileExists(t, filepath.Join(root, "escaped.json"))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(root), "escaped.json"))
	assert.NoDirExists(t, filepath.Join(dir, "solved", "sub"))
}
