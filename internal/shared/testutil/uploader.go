package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/ktmtfamily/family-tree-api/internal/imagehost"
)

// MockUploader is a mock implementation of imagehost.Uploader for testing
type MockUploader struct {
	UploadFunc func(ctx context.Context, filename string, content []byte) (string, error)

	mu    sync.Mutex
	calls []UploadCall
}

// UploadCall records one Upload invocation
type UploadCall struct {
	Filename string
	Content  []byte
}

func (m *MockUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.calls = append(m.calls, UploadCall{Filename: filename, Content: content})
	m.mu.Unlock()

	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, content)
	}
	return "https://res.cloudinary.com/test/image/upload/" + filename, nil
}

// Calls returns the recorded invocations
func (m *MockUploader) Calls() []UploadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]UploadCall(nil), m.calls...)
}

// Ensure MockUploader implements imagehost.Uploader
var _ imagehost.Uploader = (*MockUploader)(nil)

// NewMockUploader creates a new mock uploader with default behavior
func NewMockUploader() *MockUploader {
	return &MockUploader{}
}
