package cache

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

const imageExt = ".png"

// imageIDPattern keeps ids to plain file names
var imageIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// FetchFunc retrieves image bytes on a cache miss
type FetchFunc func(ctx context.Context) ([]byte, error)

// GetOrFetchImage returns the cached image for id, calling fetch only when no
// file exists yet. Once a fetch has succeeded, later calls never fetch again.
// A failed fetch writes nothing. A failed write is logged and the fetched
// bytes are still returned.
func (s *Store) GetOrFetchImage(ctx context.Context, id string, fetch FetchFunc) ([]byte, error) {
	if !imageIDPattern.MatchString(id) {
		return nil, errors.InvalidArgumentf("invalid image id %q", id)
	}
	if fetch == nil {
		return nil, errors.InvalidArgument("fetch function cannot be nil")
	}

	if data, ok := s.readImage(ctx, id); ok {
		return data, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, abandoned(err, id)
	}

	// Concurrent misses for the same id share one fetch, detached from the
	// caller that started it so its cancellation cannot fail the others
	shared := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(id, func() (any, error) {
		if data, ok := s.readImage(shared, id); ok {
			return data, nil
		}

		data, err := fetch(shared)
		if err != nil {
			return nil, err
		}

		data = s.encode(shared, id, data)
		s.writeImage(shared, id, data)
		return data, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, abandoned(ctx.Err(), id)
	}
}

func abandoned(err error, id string) error {
	code := errors.CodeUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		code = errors.CodeDeadlineExceeded
	}
	return errors.WrapWithCodef(err, code, "gave up waiting for image %s", id)
}

// ClearAll removes every cached image and returns how many files were removed
func (s *Store) ClearAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.imageDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "failed to list image cache", "dir", s.imageDir, "error", err)
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(s.imageDir, entry.Name())
		if err := os.Remove(path); err != nil {
			slog.WarnContext(ctx, "failed to remove cached image", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed
}

// TotalSizeBytes sums the size of every cached image
func (s *Store) TotalSizeBytes(ctx context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, size := s.imageUsageLocked(ctx)
	return size
}

func (s *Store) imagePath(id string) string {
	return filepath.Join(s.imageDir, id+imageExt)
}

func (s *Store) readImage(ctx context.Context, id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.imagePath(id))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "failed to read cached image", "id", id, "error", err)
		}
		return nil, false
	}
	return data, true
}

func (s *Store) writeImage(ctx context.Context, id string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.imageDir, 0o755); err != nil {
		slog.WarnContext(ctx, "failed to create image cache directory", "dir", s.imageDir, "error", err)
		return
	}
	if err := writeFileAtomic(s.imagePath(id), data); err != nil {
		slog.WarnContext(ctx, "failed to cache image", "id", id, "error", err)
	}
}

func (s *Store) encode(ctx context.Context, id string, data []byte) []byte {
	if s.encoder == nil {
		return data
	}
	encoded, err := s.encoder(data)
	if err != nil {
		slog.WarnContext(ctx, "failed to re-encode image, caching original bytes", "id", id, "error", err)
		return data
	}
	return encoded
}

// imageUsageLocked counts cached image files and their total size
func (s *Store) imageUsageLocked(ctx context.Context) (int, int64) {
	entries, err := os.ReadDir(s.imageDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "failed to list image cache", "dir", s.imageDir, "error", err)
		}
		return 0, 0
	}

	var (
		files int
		total int64
	)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files++
		total += info.Size()
	}
	return files, total
}
