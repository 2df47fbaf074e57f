package compdb

import (
	"fmt"
	"strings"

	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
	"github.com/ryanjeffares/compdb-vs/internal/vspath"
)

// CorrectCasing returns path with every component's casing corrected to
// match the filesystem. Tracker logs record paths in a single fixed case,
// but editors and language servers want the spelling the filesystem
// actually stores.
//
// The resolution recurses from the leaf upward: the parent is resolved
// first, its true-cased listing is searched for the entry whose name is
// case-insensitively equal to the leaf, and that entry's spelling is
// appended. The comparison is an explicit string fold of the names, never
// a filesystem "same file" predicate, which can conflate distinct
// case-insensitively-similar directories. Resolving the parent before
// listing it keeps the lookup valid on case-sensitive filesystems too.
func CorrectCasing(fsys vsfs.FS, path string) (string, error) {
	if vspath.IsRoot(path) {
		return path, nil
	}

	parent, err := CorrectCasing(fsys, vspath.Dir(path))
	if err != nil {
		return "", err
	}
	leaf := vspath.Base(path)

	ents, err := fsys.ReadDir(parent)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathNotFound, parent, err)
	}
	for _, ent := range ents {
		if strings.EqualFold(ent.Name, leaf) {
			return vspath.Join(parent, ent.Name), nil
		}
	}

	return "", fmt.Errorf("%w: no entry in %s matches %s", ErrCasingResolution, parent, leaf)
}
