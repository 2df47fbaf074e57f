// Package vsfs abstracts the filesystem operations the database engine
// needs: listing a directory, reading a file, and checking existence.
// The engine only ever sees this interface, so tests can run it against an
// in-memory tree holding Windows-style paths on any platform.
package vsfs

import (
	"os"
	"path/filepath"
)

// DirEntry is one entry of a directory listing. Name carries the exact
// on-disk casing, which is what the case resolver recovers.
type DirEntry struct {
	Name  string
	IsDir bool
}

// FS is the read-only filesystem capability surface.
type FS interface {
	// ReadDir lists the entries of dir.
	ReadDir(dir string) ([]DirEntry, error)
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)
	// Stat describes the entry at path, or fails if it does not exist.
	Stat(path string) (DirEntry, error)
}

// Exists reports whether path names an existing file or directory.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsDir reports whether path names an existing directory.
func IsDir(fsys FS, path string) bool {
	ent, err := fsys.Stat(path)
	return err == nil && ent.IsDir
}

// OS is the real filesystem.
var OS FS = osFS{}

type osFS struct{}

func (osFS) ReadDir(dir string) ([]DirEntry, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, len(ents))
	for _, ent := range ents {
		out = append(out, DirEntry{Name: ent.Name(), IsDir: ent.IsDir()})
	}
	return out, nil
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) Stat(path string) (DirEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return DirEntry{}, err
	}
	return DirEntry{Name: filepath.Base(path), IsDir: info.IsDir()}, nil
}
