package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
)

func TestIsImage(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.gif", true},
		{"photo.bmp", true},
		{"PHOTO.PNG", true},
		{"archive.tar.png", true},
		{"document.pdf", false},
		{"script.png.exe", false},
		{"noextension", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsImage(tc.name); got != tc.want {
			t.Errorf("IsImage(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("garang guni uncle collects karung guni "), 64)
	packed, err := CompressImage(payload)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if len(packed) >= len(payload) {
		t.Fatalf("repetitive payload did not shrink: %d -> %d", len(payload), len(packed))
	}
	out, err := DecompressImage(packed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatal("round trip lost data")
	}
}

func TestDecompressCorruptData(t *testing.T) {
	if _, err := DecompressImage([]byte("definitely not zlib")); !errors.Is(err, ErrCorruptImage) {
		t.Fatalf("bad header: want ErrCorruptImage, got %v", err)
	}

	packed, err := CompressImage([]byte("short payload"))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	truncated := packed[:len(packed)-4]
	if _, err := DecompressImage(truncated); !errors.Is(err, ErrCorruptImage) {
		t.Fatalf("truncated stream: want ErrCorruptImage, got %v", err)
	}
}

func TestClassifyIOError(t *testing.T) {
	if got := ClassifyIOError(nil); got != nil {
		t.Fatalf("nil: got %v", got)
	}
	if got := ClassifyIOError(syscall.ENOSPC); !errors.Is(got, ErrStorageFull) {
		t.Fatalf("ENOSPC: want ErrStorageFull, got %v", got)
	}
	wrapped := fmt.Errorf("write blob: %w", syscall.ENOSPC)
	if got := ClassifyIOError(wrapped); !errors.Is(got, ErrStorageFull) {
		t.Fatalf("wrapped ENOSPC: want ErrStorageFull, got %v", got)
	}
	pathErr := &fs.PathError{Op: "open", Path: "/var/img", Err: syscall.EACCES}
	if got := ClassifyIOError(pathErr); !errors.Is(got, ErrFileSystem) {
		t.Fatalf("path error: want ErrFileSystem, got %v", got)
	}
	plain := errors.New("broker unavailable")
	if got := ClassifyIOError(plain); got != plain {
		t.Fatalf("unrelated error must pass through, got %v", got)
	}
}
