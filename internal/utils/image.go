package utils

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"strings"
	"syscall"

	"github.com/klauspost/compress/zlib"
)

// Image payloads are stored deflate-compressed. These sentinels classify
// the failure modes so handlers can map them onto distinct status codes
// (unsupported/corrupt -> 400, disk full -> 507, filesystem -> 502,
// anything else -> 500).
var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrCorruptImage     = errors.New("stored image data is corrupt")
	ErrStorageFull      = errors.New("storage full")
	ErrFileSystem       = errors.New("file system error")
)

// imageSuffixes is the allow-list of accepted upload extensions. Matching is
// a case-insensitive suffix check so compound names like "photo.tar.png"
// pass as well.
var imageSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// IsImage reports whether the filename carries an allowed image extension.
// An empty filename is never an image.
func IsImage(filename string) bool {
	if filename == "" {
		return false
	}
	lower := strings.ToLower(filename)
	for _, suf := range imageSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}

// CompressImage deflates raw upload bytes for storage.
func CompressImage(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, ClassifyIOError(err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, ClassifyIOError(err)
	}
	if err := w.Close(); err != nil {
		return nil, ClassifyIOError(err)
	}
	return buf.Bytes(), nil
}

// DecompressImage inflates stored bytes back to the original upload.
// Corrupt stored data (bad header, checksum mismatch, truncation) is
// reported as ErrCorruptImage.
func DecompressImage(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrCorruptImage
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrCorruptImage
	}
	return out, nil
}

// ClassifyIOError maps low-level I/O failures onto the storage error
// taxonomy. ENOSPC becomes ErrStorageFull, path and syscall errors become
// ErrFileSystem, and everything else passes through for the generic 500.
func ClassifyIOError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOSPC) {
		return ErrStorageFull
	}
	var pathErr *fs.PathError
	var sysErr syscall.Errno
	if errors.As(err, &pathErr) || errors.As(err, &sysErr) {
		return ErrFileSystem
	}
	return err
}
