package vsfs

import (
	"io/fs"
	"sort"
	"strings"
)

// MapFS is an in-memory FS for tests, in the spirit of testing/fstest.
// Keys are full file paths in their true casing; lookups are
// case-insensitive and accept either separator, which mirrors how NTFS
// serves the all-uppercase paths recorded in tlog files. Directories are
// implied by the file paths.
type MapFS map[string][]byte

func (m MapFS) ReadDir(dir string) ([]DirEntry, error) {
	nd := norm(dir)
	found := false
	byName := make(map[string]DirEntry)
	for key := range m {
		cur, comps := chainStart(key)
		if cur == nd {
			found = true
		}
		for i, comp := range comps {
			if cur == nd {
				ent := DirEntry{Name: comp, IsDir: i < len(comps)-1}
				if prev, ok := byName[strings.ToLower(comp)]; !ok || (!prev.IsDir && ent.IsDir) {
					byName[strings.ToLower(comp)] = ent
				}
			}
			cur = extend(cur, comp)
			if cur == nd && i < len(comps)-1 {
				found = true
			}
		}
	}
	if !found {
		return nil, fs.ErrNotExist
	}
	ents := make([]DirEntry, 0, len(byName))
	for _, ent := range byName {
		ents = append(ents, ent)
	}
	sort.Slice(ents, func(i, j int) bool { return ents[i].Name < ents[j].Name })
	return ents, nil
}

func (m MapFS) ReadFile(path string) ([]byte, error) {
	np := norm(path)
	for key, data := range m {
		if norm(key) == np {
			return append([]byte(nil), data...), nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m MapFS) Stat(path string) (DirEntry, error) {
	np := norm(path)
	for key := range m {
		cur, comps := chainStart(key)
		if cur == np {
			return DirEntry{Name: path, IsDir: true}, nil
		}
		for i, comp := range comps {
			cur = extend(cur, comp)
			if cur == np {
				return DirEntry{Name: comp, IsDir: i < len(comps)-1}, nil
			}
		}
	}
	return DirEntry{}, fs.ErrNotExist
}

// norm is the case- and separator-insensitive lookup key for a path.
func norm(path string) string {
	p := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

// chainStart returns the normalized starting point of a key's directory
// chain ("/" for rooted POSIX paths, "" before a drive letter) and the
// true-cased components that follow.
func chainStart(key string) (string, []string) {
	start := ""
	if strings.HasPrefix(key, "/") || strings.HasPrefix(key, `\`) {
		start = "/"
	}
	comps := strings.FieldsFunc(key, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return start, comps
}

func extend(cur, comp string) string {
	switch cur {
	case "":
		return strings.ToLower(comp)
	case "/":
		return "/" + strings.ToLower(comp)
	default:
		return cur + "/" + strings.ToLower(comp)
	}
}
