package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/story/internal/config"
	"github.com/chriserin/story/internal/db"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func runInit(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf, config.Default()))
	return buf.String()
}

func TestInit_CreatesFeaturesDirectoryWithExample(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	info, err := os.Stat(filepath.Join(dir, "features"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, out, "new  features/")

	_, err = os.Stat(filepath.Join(dir, "features", "example.feature"))
	require.NoError(t, err)
	assert.Contains(t, out, "new  features/example.feature")
}

func TestInit_FeaturesDirectoryAlreadyExists(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "features"), 0o755))

	out := runInit(t)

	assert.Contains(t, out, "trk  features/")
	_, err := os.Stat(filepath.Join(dir, "features", "example.feature"))
	assert.True(t, os.IsNotExist(err))
}

func TestInit_InitializesSQLiteDatabase(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	dbPath := filepath.Join(dir, "features", "story.db")
	_, err := os.Stat(dbPath)
	require.NoError(t, err)

	sqlDB, err := db.Open(dbPath)
	require.NoError(t, err)
	defer sqlDB.Close()

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.Contains(t, out, "new  features/story.db")
}

func TestInit_DatabaseAlreadyExists(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runInit(t)
	assert.Contains(t, out, "trk  features/story.db")
}

func TestInit_CreatesGitignore(t *testing.T) {
	inTempDir(t)
	out := runInit(t)

	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "features/story.db*\n", string(data))
	assert.Contains(t, out, ".gitignore created")
}

func TestInit_AppendsToExistingGitignore(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile(".gitignore", []byte("node_modules"), 0o644))

	out := runInit(t)

	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "node_modules\nfeatures/story.db*\n", string(data))
	assert.Contains(t, out, "features/story.db* added to .gitignore")
}

func TestInit_GitignoreEntryAlreadyPresent(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runInit(t)
	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "features/story.db*\n", string(data))
	assert.Contains(t, out, "features/story.db* already in .gitignore")
}

func TestInit_WithoutHistory(t *testing.T) {
	dir := inTempDir(t)
	cfg := config.Default()
	cfg.History = false

	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf, cfg))

	_, err := os.Stat(filepath.Join(dir, "features", "story.db"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, ".gitignore"))
	assert.True(t, os.IsNotExist(err))
}

func TestInit_GitignoreFollowsConfiguredDatabase(t *testing.T) {
	inTempDir(t)
	cfg := config.Default()
	cfg.Database = "var/history.db"

	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf, cfg))

	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "var/history.db*\n", string(data))
	assert.Contains(t, buf.String(), "new  var/history.db")
	assert.Contains(t, buf.String(), "var/history.db* added to .gitignore")
}

func TestIgnoreHistory_LeavesFileUntouchedWhenListed(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile(".gitignore", []byte("  features/story.db*  \nbin/"), 0o644))

	msgs, err := ignoreHistory(".gitignore", config.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"features/story.db* already in .gitignore"}, msgs)

	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "  features/story.db*  \nbin/", string(data))
}
