package uploads

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is the URL prefix uploaded images are served under.
// An imageUrl carrying this prefix is store-managed; anything else is
// an external link the store never touches.
const PublicPrefix = "/uploads/"

// MaxImageSize is the largest accepted upload (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("image exceeds the maximum allowed size")
)

// Store persists uploaded project images as individual files under a
// single directory, each with a generated unique name.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded image to disk under a generated name and
// returns its public retrieval path. Non-image content types and files
// over MaxImageSize are rejected.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxImageSize {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure uploads dir: %w", err)
	}

	name, err := uniqueName(fh.Filename)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return PublicPrefix + name, nil
}

// Managed reports whether the given imageUrl points at a file this
// store owns, as opposed to an externally supplied URL.
func (s *Store) Managed(imageURL string) bool {
	return strings.HasPrefix(imageURL, PublicPrefix)
}

// Delete removes a managed image file. Unmanaged paths and already
// missing files are a no-op.
func (s *Store) Delete(imageURL string) error {
	if !s.Managed(imageURL) {
		return nil
	}
	// Only the base name is trusted from the stored path.
	name := path.Base(imageURL)
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload %s: %w", name, err)
	}
	return nil
}

// Sweep removes files in the uploads directory whose public path is not
// in the referenced set and returns how many were removed. Files newer
// than the grace period are kept so an upload racing a project save is
// not swept away.
func (s *Store) Sweep(referenced map[string]bool, grace time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read uploads dir: %w", err)
	}

	removed := 0
	cutoff := time.Now().Add(-grace)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if referenced[PublicPrefix+entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("sweep upload %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// uniqueName builds "project-<ms>-<rand><ext>".
func uniqueName(original string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("project-%d-%d%s", time.Now().UnixMilli(), n.Int64(), ext), nil
}
