package images

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes uploaded images to the uploads directory. File names are
// <sanitized-name>-<unix-millis>-<uuid-fragment><ext>, so concurrent uploads
// of the same logical name never overwrite each other.
type Store struct {
	dir string
}

// NewStore prepares the uploads directory. When the primary directory cannot
// be created or written (read-only deployments), it falls back to a
// directory under the system temp dir rather than failing startup.
func NewStore(dir string) *Store {
	if err := ensureWritable(dir); err != nil {
		fallback := filepath.Join(os.TempDir(), "carwash-uploads")
		log.Printf("uploads dir %q not writable (%v), falling back to %q", dir, err, fallback)
		if err := ensureWritable(fallback); err != nil {
			log.Printf("fallback uploads dir not writable either: %v", err)
		}
		dir = fallback
	}
	return &Store{dir: dir}
}

func ensureWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".write-probe")
	f, err := os.Create(probe)
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(probe)
}

func (s *Store) Dir() string {
	return s.dir
}

// Save persists the uploaded file under the sanitized logical name and
// returns the stored file name. The stored name is recorded on the owning
// record; the logical name keeps working through the resolver.
func (s *Store) Save(fh *multipart.FileHeader, logicalName string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))

	name := fmt.Sprintf(
		"%s-%d-%s%s",
		Sanitize(logicalName),
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		ext,
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}
