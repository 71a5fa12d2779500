package imagehost

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

type GCSOptions struct {
	CredentialsFile string // empty: application default credentials
	BucketName      string
	Folder          string
	ClientOptions   []option.ClientOption
}

// GCS writes photos into a publicly readable bucket.
type GCS struct {
	client *storage.Client
	bucket string
	folder string
}

func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	clientOpts := opts.ClientOptions
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &GCS{
		client: client,
		bucket: opts.BucketName,
		folder: opts.Folder,
	}, nil
}

// Upload streams r into a new object and returns its public URL.
func (g *GCS) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := objectName(g.folder, filename)

	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	if contentType := mime.TypeByExtension(path.Ext(name)); contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %q: %w", name, err)
	}

	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, g.bucket, name), nil
}

// Close releases the underlying client
func (g *GCS) Close() error {
	return g.client.Close()
}
