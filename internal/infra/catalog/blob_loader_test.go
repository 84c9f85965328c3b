package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"muslimapp/config"
	"muslimapp/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customCatalog = `events:
  - id: founding-day
    hijriMonth: 2
    hijriDay: 3
    title: Founding Day
    description: Local observance
  - id: islamic-new-year
    hijriMonth: 0
    hijriDay: 1
    title: Islamic New Year
    description: 1 Muharram
`

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_DefaultCatalog(t *testing.T) {
	catalog, err := New(context.Background(), &config.Config{}, newDiscardLogger())
	require.NoError(t, err)

	assert.Equal(t, calendar.DefaultCatalog().Len(), catalog.Len())
}

func TestNew_FromFileBucket(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.yaml"), []byte(customCatalog), 0o600))

	cfg := &config.Config{}
	cfg.Calendar.CatalogBucket = "file://" + filepath.ToSlash(dir)
	cfg.Calendar.CatalogKey = "events.yaml"

	catalog, err := New(context.Background(), cfg, newDiscardLogger())
	require.NoError(t, err)

	require.Equal(t, 2, catalog.Len())
	assert.Equal(t, "islamic-new-year", catalog.All()[0].ID)
}

func TestLoadFromBucket_MissingKey(t *testing.T) {
	_, err := LoadFromBucket(context.Background(), "file://"+filepath.ToSlash(t.TempDir()), "absent.yaml")

	assert.ErrorContains(t, err, "failed to read catalog")
}
