// Package imagehost uploads member photos to a remote image host and returns
// a durable public URL.
package imagehost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/ktmtfamily/family-tree-api/internal/config"
)

// ErrNotConfigured is returned by every upload when no credentials were supplied.
var ErrNotConfigured = errors.New("imagehost: provider credentials not configured")

// Uploader stores the bytes read from r and returns the public URL.
// Calls are synchronous and not retried.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// New builds the uploader selected by STORAGE_PROVIDER.
func New(ctx context.Context, cfg *config.Config) (Uploader, error) {
	switch cfg.Storage.Provider {
	case config.StorageCloudinary:
		if !cfg.CloudinaryConfigured() {
			slog.Warn("cloudinary credentials missing, photo uploads will fail")
			return Unconfigured{}, nil
		}
		return NewCloudinary(CloudinaryOptions{
			CloudName:    cfg.Storage.CloudinaryCloudName,
			APIKey:       cfg.Storage.CloudinaryAPIKey,
			APISecret:    cfg.Storage.CloudinaryAPISecret,
			Folder:       cfg.Storage.CloudinaryFolder,
			UploadPrefix: cfg.Storage.CloudinaryAPIPrefix,
		})
	case config.StorageGCS:
		return NewGCS(ctx, GCSOptions{
			CredentialsFile: cfg.Storage.GCSCredentialsFile,
			BucketName:      cfg.Storage.GCSBucket,
			Folder:          cfg.Storage.GCSFolder,
		})
	default:
		return nil, fmt.Errorf("unsupported storage provider %q", cfg.Storage.Provider)
	}
}

// Unconfigured fails every upload with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}

// objectName builds "<folder>/<uuid><ext>" keeping the lowercased extension
// of the client file name.
func objectName(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 8 {
		ext = ""
	}

	name := uuid.NewString() + ext
	if folder == "" {
		return name
	}
	return strings.TrimSuffix(folder, "/") + "/" + name
}
