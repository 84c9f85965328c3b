// Package catalog loads the Islamic event catalog, optionally replacing the embedded
// default with a YAML document stored in a blob bucket.
package catalog

import (
	"context"
	"log/slog"

	"muslimapp/config"
	"muslimapp/internal/domain/calendar"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// New returns the catalog configured by calendar.catalogBucket, or the embedded default.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*calendar.Catalog, error) {
	bucketURL := cfg.Calendar.CatalogBucket
	if bucketURL == "" {
		return calendar.DefaultCatalog(), nil
	}

	catalog, err := LoadFromBucket(ctx, bucketURL, cfg.Calendar.CatalogKey)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded Islamic event catalog from bucket",
		slog.String("bucket", bucketURL),
		slog.String("key", cfg.Calendar.CatalogKey),
		slog.Int("events", catalog.Len()),
	)

	return catalog, nil
}

// LoadFromBucket reads and parses the catalog stored under key.
func LoadFromBucket(ctx context.Context, bucketURL, key string) (*calendar.Catalog, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", key)
	}

	catalog, err := calendar.ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", key)
	}

	return catalog, nil
}
