package compdb

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ryanjeffares/compdb-vs/internal/textenc"
	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
	"github.com/ryanjeffares/compdb-vs/internal/vspath"
)

// CreateHeaderCommands synthesizes a database entry for every header
// transitively reachable from the given source entries, so editors get
// the same quality of analysis for headers as for translation units.
//
// Each round scans only the entries discovered in the previous round (the
// first round scans the sources) and a header's entry is copied from the
// file that included it, with the path substituted. The loop terminates
// because the known set only grows and is consulted before any entry is
// emitted: no two rounds can discover the same canonical file.
func CreateHeaderCommands(fsys vsfs.FS, sources []CompileCommand) ([]CompileCommand, error) {
	known := make(map[string]bool, len(sources))
	for _, cmd := range sources {
		known[strings.ToLower(cmd.File)] = true
	}

	var headers []CompileCommand
	work := sources
	for round := 1; len(work) > 0; round++ {
		var added []CompileCommand
		for _, cmd := range work {
			found, err := headersIncludedBy(fsys, cmd, known)
			if err != nil {
				return nil, err
			}
			added = append(added, found...)
		}
		log.Debugf("header round %d: %d new entries", round, len(added))
		headers = append(headers, added...)
		work = added
	}
	return headers, nil
}

// headersIncludedBy resolves every include directive of one entry's file
// against its search paths and returns entries for the headers not seen
// before. Newly found headers are recorded in known.
func headersIncludedBy(fsys vsfs.FS, cmd CompileCommand, known map[string]bool) ([]CompileCommand, error) {
	data, err := fsys.ReadFile(cmd.File)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", textenc.ErrUnreadableStream, cmd.File, err)
	}

	includes := ScanIncludes(data, isObjectiveC(cmd.File))
	if len(includes) == 0 {
		return nil, nil
	}
	searchPaths, err := IncludePaths(cmd.Command)
	if err != nil {
		return nil, err
	}

	var added []CompileCommand
	for _, inc := range includes {
		// Quote-form includes try the including file's own directory
		// before any /I path.
		dirs := searchPaths
		if inc.Quote {
			dirs = append([]string{vspath.Dir(cmd.File)}, searchPaths...)
		}

		for _, dir := range dirs {
			candidate := vspath.Clean(vspath.Join(dir, inc.Target))
			if !vsfs.Exists(fsys, candidate) {
				// not every search path holds the header; expected
				continue
			}
			resolved, err := CorrectCasing(fsys, candidate)
			if err != nil {
				return nil, err
			}
			key := strings.ToLower(resolved)
			if !known[key] {
				known[key] = true
				log.Debugf("header: %s (included by %s)", resolved, cmd.File)
				added = append(added, CompileCommand{
					Directory: cmd.Directory,
					Command:   strings.Replace(cmd.Command, cmd.File, resolved, 1),
					File:      resolved,
				})
			}
			// The first existing candidate wins, even when the same
			// header name exists further down the search order with
			// different content.
			break
		}
	}
	return added, nil
}
