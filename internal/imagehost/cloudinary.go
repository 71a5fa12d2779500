package imagehost

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryOptions struct {
	CloudName    string
	APIKey       string
	APISecret    string
	Folder       string
	UploadPrefix string // regional API host, empty for the default
}

// Cloudinary uploads photos into a folder of a Cloudinary account.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(opts CloudinaryOptions) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(opts.CloudName, opts.APIKey, opts.APISecret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}
	if opts.UploadPrefix != "" {
		cld.Config.API.UploadPrefix = opts.UploadPrefix
	}

	return &Cloudinary{cld: cld, folder: opts.Folder}, nil
}

// Upload sends the photo and returns its secure_url.
func (c *Cloudinary) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder: c.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %q: %w", filename, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %q: %s", filename, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary upload: response has no secure_url")
	}

	return resp.SecureURL, nil
}
