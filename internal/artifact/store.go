package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	sniffLen      = 512
	maxNameLength = 128
	maxAttempts   = 10
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
	".dcm":  {},
}

var unsafeNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

type Store struct {
	log *slog.Logger
	dir string
	now func() time.Time
}

func NewStore(log *slog.Logger, dir string) *Store {
	return &Store{
		log: log,
		dir: dir,
		now: time.Now,
	}
}

// Save writes r to a new file under the uploads directory. Every call creates
// a new artifact, identical content included.
func (s *Store) Save(r io.Reader, originalName string) (*domain.Artifact, error) {
	if r == nil || strings.TrimSpace(originalName) == "" {
		return nil, domain.ErrNoFileProvided
	}

	name := SanitizeName(originalName)
	if !AllowedExt(filepath.Ext(name)) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFile, originalName)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create uploads directory: %w", domain.ErrStorage, err)
	}

	uploadedAt := s.now()

	f, path, err := s.createUnique(uploadedAt, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, s.abort(f, path, fmt.Errorf("failed to read upload: %w", err))
	}
	head = head[:n]

	if n == 0 {
		return nil, s.abort(f, path, domain.ErrNoFileProvided)
	}

	written, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return nil, s.abort(f, path, fmt.Errorf("%w: failed to write artifact: %w", domain.ErrStorage, err))
	}

	if err := f.Sync(); err != nil {
		return nil, s.abort(f, path, fmt.Errorf("%w: failed to sync artifact: %w", domain.ErrStorage, err))
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: failed to close artifact: %w", domain.ErrStorage, err)
	}

	artifact := &domain.Artifact{
		Path:         path,
		OriginalName: originalName,
		SizeBytes:    written,
		MIMEType:     http.DetectContentType(head),
		UploadedAt:   uploadedAt,
	}

	s.log.Debug("artifact saved",
		slog.String("path", artifact.Path),
		slog.Int64("size", artifact.SizeBytes),
		slog.String("mime_type", artifact.MIMEType),
	)

	return artifact, nil
}

// Remove deletes the artifact at path. A missing file is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove artifact: %w", err)
	}
	return nil
}

// Exists reports whether path names a regular file.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *Store) createUnique(uploadedAt time.Time, name string) (*os.File, string, error) {
	prefix := strconv.FormatInt(uploadedAt.UnixMilli(), 10)

	for attempt := range maxAttempts {
		filename := prefix + "_" + name
		if attempt > 0 {
			ext := filepath.Ext(name)
			filename = fmt.Sprintf("%s_%s-%d%s", prefix, strings.TrimSuffix(name, ext), attempt, ext)
		}

		path := filepath.Join(s.dir, filename)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create artifact file: %w", err)
		}

		return f, path, nil
	}

	return nil, "", fmt.Errorf("failed to allocate a unique name for %q", name)
}

func (s *Store) abort(f *os.File, path string, cause error) error {
	if err := errors.Join(f.Close(), os.Remove(path)); err != nil {
		s.log.Warn("failed to clean up partial artifact",
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
	}

	return cause
}

// AllowedExt checks if a file extension belongs to a supported image format.
func AllowedExt(ext string) bool {
	_, ok := allowedExtensions[strings.ToLower(ext)]
	return ok
}

// SanitizeName strips directories, diacritics and filesystem-unsafe
// characters from an uploaded file name.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, name); err == nil {
		name = folded
	}

	name = unsafeNameReplacer.Replace(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, name)

	if len(name) > maxNameLength {
		ext := filepath.Ext(name)
		if len(ext) >= maxNameLength {
			ext = ""
		}
		name = strings.ToValidUTF8(name[:maxNameLength-len(ext)], "") + ext
	}

	name = strings.Trim(name, "._-")
	if name == "" {
		return "upload"
	}

	return name
}
