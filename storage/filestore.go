package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskFileStore keeps uploaded blobs on the local filesystem and serves them
// back through the /uploads/ route.
type DiskFileStore struct {
	baseDir string
	baseURL string
}

// NewDiskFileStore creates a DiskFileStore rooted at baseDir. Stored files
// are addressed publicly as baseURL/uploads/<key>.
func NewDiskFileStore(baseDir, baseURL string) *DiskFileStore {
	return &DiskFileStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Dir returns the directory served by the static uploads route.
func (fs *DiskFileStore) Dir() string {
	return fs.baseDir
}

// resolve maps a key to its on-disk path. Keys whose cleaned path lands
// outside baseDir are rejected.
func (fs *DiskFileStore) resolve(key string) (string, error) {
	path := filepath.Join(fs.baseDir, filepath.FromSlash(key))
	base := filepath.Clean(fs.baseDir)
	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("key %q escapes the upload directory", key)
	}
	return path, nil
}

// Save writes the blob under key and returns its public URL.
func (fs *DiskFileStore) Save(key string, r io.Reader) (string, error) {
	path, err := fs.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fs.baseURL + "/uploads/" + key, nil
}

// Delete removes the blob referenced by a URL previously returned from Save.
func (fs *DiskFileStore) Delete(url string) error {
	prefix := fs.baseURL + "/uploads/"
	if !strings.HasPrefix(url, prefix) {
		return fmt.Errorf("url %q is not served by this store", url)
	}
	key := strings.TrimPrefix(url, prefix)

	path, err := fs.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
