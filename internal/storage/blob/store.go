package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/domain/model"
)

// storedNamePattern is the only shape a stored photo name can have: a
// 32-char uuid hex plus a lowercase extension. Anything else is rejected,
// which also rules out path traversal through served filenames.
var storedNamePattern = regexp.MustCompile(`^[0-9a-f]{32}\.[0-9a-z]+$`)

// Store persists uploaded cleanup photos on the local filesystem, split into
// one area per photo role. Stored names never derive from the uploaded name.
type Store struct {
	root string
}

// NewStore creates the store root with both role areas.
func NewStore(root string) (*Store, error) {
	for _, role := range []model.PhotoRole{model.PhotoRoleBefore, model.PhotoRoleAfter} {
		if err := os.MkdirAll(filepath.Join(root, string(role)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload area: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// Save writes the photo under a fresh collision-resistant name and returns
// that name. The extension must already be normalized to lowercase.
func (s *Store) Save(role model.PhotoRole, ext string, src io.Reader) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("unknown photo role %q", role)
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	dst, err := os.OpenFile(filepath.Join(s.root, string(role), name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close photo file: %w", err)
	}

	return name, nil
}

// Path resolves a stored photo name to its filesystem path. Returns
// ErrNotFound for unknown roles, names outside the stored shape, or
// missing files.
func (s *Store) Path(role model.PhotoRole, name string) (string, error) {
	if !role.Valid() || !storedNamePattern.MatchString(name) {
		return "", domainErrors.ErrNotFound
	}

	path := filepath.Join(s.root, string(role), name)
	if _, err := os.Stat(path); err != nil {
		return "", domainErrors.ErrNotFound
	}
	return path, nil
}

// RemoveUnreferenced deletes stored photos of the given role that are absent
// from referenced and older than minAge. Fresh files are kept because a
// submission may still be in flight between the file write and the database
// commit. Returns the number of removed files.
func (s *Store) RemoveUnreferenced(role model.PhotoRole, referenced map[string]struct{}, minAge time.Duration) (int, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("unknown photo role %q", role)
	}

	dir := filepath.Join(s.root, string(role))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read upload area: %w", err)
	}

	cutoff := time.Now().Add(-minAge)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !storedNamePattern.MatchString(name) {
			continue
		}
		if _, ok := referenced[name]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, fmt.Errorf("remove orphaned photo: %w", err)
		}
		removed++
	}
	return removed, nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}
