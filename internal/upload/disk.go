// AngelaMos | 2026
// disk.go

package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/auth-api/internal/config"
)

var (
	ErrFileType     = errors.New("only jpg, jpeg, png and webp images are allowed")
	ErrFileTooLarge = errors.New("file too large (max 5MB)")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// Store writes profile pictures to local disk and hands back the public
// reference under which they are served.
type Store struct {
	dir        string
	publicPath string
	maxSize    int64
}

func NewStore(cfg config.UploadsConfig) *Store {
	return &Store{
		dir:        cfg.Dir,
		publicPath: cfg.PublicPath,
		maxSize:    cfg.MaxFileSize,
	}
}

// Init creates the upload directory if absent. Called once at startup.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}
	return nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) MaxFileSize() int64 {
	return s.maxSize
}

// Save validates and writes one uploaded file, returning its public
// reference. The reference is only returned after the file is fully written
// and closed; any failure removes the partial file so no orphaned bytes are
// left behind.
func (s *Store) Save(
	file multipart.File,
	header *multipart.FileHeader,
) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrFileType
	}

	if header.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if _, ok := allowedContentTypes[http.DetectContentType(sniff[:n])]; !ok {
		return "", ErrFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := fmt.Sprintf(
		"profile-%d-%s%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		ext,
	)
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(file, s.maxSize+1))
	if err != nil {
		_ = dst.Close()          //nolint:errcheck // cleanup path
		_ = os.Remove(dstPath)   //nolint:errcheck // cleanup path
		return "", fmt.Errorf("write upload: %w", err)
	}

	if written > s.maxSize {
		_ = dst.Close()          //nolint:errcheck // cleanup path
		_ = os.Remove(dstPath)   //nolint:errcheck // cleanup path
		return "", ErrFileTooLarge
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath) //nolint:errcheck // cleanup path
		return "", fmt.Errorf("flush upload: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// Remove deletes a previously saved file by its public reference. Used to
// clean up when user creation fails after a successful write.
func (s *Store) Remove(ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}

	return nil
}
