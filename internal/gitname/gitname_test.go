package gitname

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"
)

func initRepoWithName(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = name
	require.NoError(t, repo.SetConfig(cfg))
	return dir
}

func TestLookup_LocalName(t *testing.T) {
	dir := initRepoWithName(t, "Ada Lovelace")
	got, err := Lookup(dir)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", got)
}

func TestLookup_FromSubdirectory(t *testing.T) {
	dir := initRepoWithName(t, "Grace")
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	got, err := Lookup(sub)
	require.NoError(t, err)
	require.Equal(t, "Grace", got)
}

func TestNameFrom_Empty(t *testing.T) {
	_, err := nameFrom(config.NewConfig())
	require.ErrorIs(t, err, ErrNoName)
	_, err = nameFrom(nil)
	require.ErrorIs(t, err, ErrNoName)
}
