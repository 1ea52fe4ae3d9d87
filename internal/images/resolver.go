package images

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver locates an image file for a logical name. The uploads directory
// is searched first, then the seeded model and brand image sets; the first
// match wins. Names collide across directories by construction, which is why
// uploads now also record their stored file name on the owning record.
type Resolver struct {
	uploadDir    string
	fallbackDirs []string
}

func NewResolver(uploadDir string, fallbackDirs ...string) *Resolver {
	return &Resolver{
		uploadDir:    uploadDir,
		fallbackDirs: fallbackDirs,
	}
}

// Resolve returns the path of the file serving the logical name, or false
// when no directory yields a match.
func (r *Resolver) Resolve(logicalName string) (string, bool) {
	name := Sanitize(logicalName)
	if name == "" {
		return "", false
	}

	// Uploaded files carry a "-<millis>-<uuid fragment>" suffix after the
	// sanitized name; seeded files are stored under the bare name.
	if path, ok := scanDir(r.uploadDir, func(base string) bool {
		return base == name || isUploadVariant(base, name)
	}); ok {
		return path, true
	}

	for _, dir := range r.fallbackDirs {
		if path, ok := scanDir(dir, func(base string) bool {
			return Sanitize(base) == name
		}); ok {
			return path, true
		}
	}

	return "", false
}

func scanDir(dir string, match func(base string) bool) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if match(base) {
			return filepath.Join(dir, e.Name()), true
		}
	}

	return "", false
}

// isUploadVariant reports whether base is name plus an upload suffix, e.g.
// "my-service-1699000000-3f2a9b1c" for logical name "my-service".
func isUploadVariant(base, name string) bool {
	if !strings.HasPrefix(base, name+"-") {
		return false
	}
	rest := strings.TrimPrefix(base, name+"-")
	if rest == "" {
		return false
	}
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
