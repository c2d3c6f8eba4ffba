package objects

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/minigit-vcs/minigit/internal/constants"
)

// ObjectStore persists objects in the repository's object space, one
// file per hash. Writes are idempotent: storing an object that already
// exists is a no-op, which is what makes unchanged files across commits
// free. Reads go through an LRU cache of decoded objects so history
// walks do not re-parse the same commits over and over.
type ObjectStore struct {
	path  string
	cache *lru.Cache[string, Object]
}

// NewObjectStore creates a store rooted at the repository path.
func NewObjectStore(repositoryPath string) *ObjectStore {
	// The cache size is a positive constant, so New cannot fail.
	cache, _ := lru.New[string, Object](constants.ObjectCacheSize)
	return &ObjectStore{
		path:  filepath.Join(repositoryPath, constants.MiniGit, constants.Objects),
		cache: cache,
	}
}

func (s *ObjectStore) objectPath(hash string) string {
	return filepath.Join(s.path, hash)
}

// Store writes the object's record to the object space. If a record
// with the same hash is already present the write is skipped; content
// addressing guarantees the existing bytes are equivalent.
func (s *ObjectStore) Store(obj Object) error {
	objectPath := s.objectPath(obj.Hash())
	if _, err := os.Stat(objectPath); err == nil {
		slog.Debug("object already stored", "hash", obj.Hash())
		s.cache.Add(obj.Hash(), obj)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat object %s: %v: %w", obj.Hash(), err, ErrStorageUnavailable)
	}

	if err := os.WriteFile(objectPath, obj.Data(), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write object %s: %v: %w", obj.Hash(), err, ErrStorageUnavailable)
	}

	s.cache.Add(obj.Hash(), obj)
	slog.Debug("stored object", "hash", obj.Hash(), "bytes", len(obj.Data()))
	return nil
}

// ReadObject loads and decodes the object stored under hash. The
// decoded object must hash back to the name it was stored under,
// otherwise the record is reported as ErrCorruptObject.
func (s *ObjectStore) ReadObject(hash string) (Object, error) {
	if !isHexHash(hash) {
		return nil, fmt.Errorf("object %q: %w", hash, ErrNotFound)
	}
	if obj, ok := s.cache.Get(hash); ok {
		return obj, nil
	}

	data, err := os.ReadFile(s.objectPath(hash))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("object %s: %w", hash, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %v: %w", hash, err, ErrStorageUnavailable)
	}

	obj, err := DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", hash, err)
	}
	if obj.Hash() != hash {
		return nil, fmt.Errorf("object %s decodes to hash %s: %w", hash, obj.Hash(), ErrCorruptObject)
	}

	s.cache.Add(hash, obj)
	return obj, nil
}

// ReadBlob loads the blob stored under hash.
func (s *ObjectStore) ReadBlob(hash string) (*Blob, error) {
	obj, err := s.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	blob, ok := obj.(*Blob)
	if !ok {
		return nil, fmt.Errorf("object %s is not a blob: %w", hash, ErrCorruptObject)
	}
	return blob, nil
}

// ReadCommit loads the commit stored under hash.
func (s *ObjectStore) ReadCommit(hash string) (*Commit, error) {
	obj, err := s.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	commit, ok := obj.(*Commit)
	if !ok {
		return nil, fmt.Errorf("object %s is not a commit: %w", hash, ErrCorruptObject)
	}
	return commit, nil
}

// Exists reports whether an object with the given hash is stored.
func (s *ObjectStore) Exists(hash string) bool {
	if !isHexHash(hash) {
		return false
	}
	if s.cache.Contains(hash) {
		return true
	}
	_, err := os.Stat(s.objectPath(hash))
	return err == nil
}

func isHexHash(hash string) bool {
	if len(hash) != constants.HashStringLength {
		return false
	}
	for _, r := range hash {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
