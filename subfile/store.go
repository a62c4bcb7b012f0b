// Package subfile archives raw submission uploads. The contest only ever
// reads scores from the database, but the original files are kept for
// audits and re-scoring, either on local disk or in S3.
package subfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Store saves a raw upload under a key and returns a stable reference
// (a filesystem path or an object URL).
type Store interface {
	Save(ctx context.Context, key string, content []byte) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Key builds the archive key for an upload: user id and unix timestamp are
// prepended so concurrent uploads of the same filename never collide.
func Key(userUUID uuid.UUID, at time.Time, filename string) string {
	safe := unsafeChars.ReplaceAllString(filepath.Base(filename), "_")
	return fmt.Sprintf("%s_%d_%s", userUUID.String(), at.Unix(), safe)
}

type localStore struct {
	dir string
}

// NewLocalStore archives uploads into a directory, creating it if needed.
func NewLocalStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) Save(ctx context.Context, key string, content []byte) (string, error) {
	path := filepath.Join(s.dir, key)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write submission file: %w", err)
	}
	return path, nil
}
