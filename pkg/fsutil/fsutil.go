// Package fsutil provides the file handling used by the mdtidy tools:
// UTF-8 reading with optional byte order mark removal, atomic writes,
// sibling output paths, and backups of previous output files.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidEncoding indicates the content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the raw file content.
	Hash [32]byte

	// HadBOM is true if a leading byte order mark was removed.
	HadBOM bool
}

// ReadOptions controls how ReadText decodes a file.
type ReadOptions struct {
	// StripBOM discards a leading UTF-8 byte order mark. When false the
	// mark is kept as an ordinary U+FEFF character.
	StripBOM bool
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads a UTF-8 text file and returns its content with metadata.
func ReadText(ctx context.Context, path string, opts ReadOptions) (string, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return "", nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	if !opts.StripBOM {
		return string(content), info, nil
	}

	decoded, err := DecodeUTF8(content)
	if err != nil {
		return "", nil, fmt.Errorf("decode %s: %w", path, err)
	}
	info.HadBOM = len(decoded) != len(content)

	return string(decoded), info, nil
}

// DecodeUTF8 decodes UTF-8 content, discarding a leading byte order mark.
func DecodeUTF8(content []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	return decoded, nil
}
