// Package tlog locates the MSBuild tracker logs that record compiler
// invocations. MSBuild writes one CL.command.1.tlog per project under
// <project>/<intermediate>/<Config>/<project>.tlog/, so a log is relevant
// when its grandparent directory carries the requested configuration name.
package tlog

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
	"github.com/ryanjeffares/compdb-vs/internal/vspath"
)

// FileName is the fixed name of the compiler invocation log.
const FileName = "CL.command.1.tlog"

var (
	// ErrDirectoryNotFound reports that the build root does not exist or
	// is not a directory.
	ErrDirectoryNotFound = errors.New("build directory not found")
	// ErrDirectoryIteration reports a failure while enumerating the tree.
	ErrDirectoryIteration = errors.New("failed to iterate directory")
)

// Find walks buildDir depth-first and collects every compiler invocation
// log belonging to the given build configuration. A root with no matching
// logs yields an empty list, not an error.
func Find(fsys vsfs.FS, buildDir, config string) ([]string, error) {
	if !vsfs.IsDir(fsys, buildDir) {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, buildDir)
	}
	return findIn(fsys, buildDir, config)
}

func findIn(fsys vsfs.FS, dir, config string) ([]string, error) {
	ents, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDirectoryIteration, dir, err)
	}

	var found []string
	for _, ent := range ents {
		path := vspath.Join(dir, ent.Name)
		if ent.IsDir {
			log.Debugf("looking in %s...", path)
			inner, err := findIn(fsys, path, config)
			if err != nil {
				return nil, err
			}
			found = append(found, inner...)
			continue
		}
		if ent.Name == FileName && vspath.Base(vspath.Dir(dir)) == config {
			log.Debugf("found file %s", path)
			found = append(found, path)
		}
	}
	return found, nil
}
