package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	adapterstorage "github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
)

const tempPrefix = ".tmp-"

// LocalStore keeps blobs as files in a single directory.
type LocalStore struct {
	dir    string
	logger *zap.Logger
}

func NewLocalStore(dir string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	store := &LocalStore{dir: dir, logger: logger}
	if err := store.removeOrphanedTemps(); err != nil {
		return nil, err
	}
	return store, nil
}

// removeOrphanedTemps deletes temp files left by a Save that never reached
// the rename, typically after a crash. List never reports them, so the
// sweep would not either.
func (s *LocalStore) removeOrphanedTemps() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", s.dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to remove orphaned temp file", zap.String("dir", s.dir), zap.String("name", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("removed orphaned temp files", zap.String("dir", s.dir), zap.Int("count", removed))
	}
	return nil
}

func (s *LocalStore) Save(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := newBlobID(ext)

	tmp, err := os.CreateTemp(s.dir, tempPrefix+"*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("closing blob: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, id)); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("publishing blob: %w", err)
	}

	return id, nil
}

func (s *LocalStore) Read(_ context.Context, id string) ([]byte, error) {
	if err := ValidateBlobID(id); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("reading blob %s: %w", id, err)
	}
	return data, nil
}

func (s *LocalStore) Delete(_ context.Context, id string) error {
	if err := ValidateBlobID(id); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("blob already deleted", zap.String("dir", s.dir), zap.String("id", id))
			return nil
		}
		return fmt.Errorf("deleting blob %s: %w", id, err)
	}
	return nil
}

func (s *LocalStore) List(_ context.Context) ([]adapterstorage.BlobInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}

	blobs := make([]adapterstorage.BlobInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Stat
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		blobs = append(blobs, adapterstorage.BlobInfo{
			ID:      entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return blobs, nil
}
