package compdb

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ryanjeffares/compdb-vs/internal/textenc"
	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
)

// CreateCompileCommands parses every tlog file into compilation database
// entries, one per translation unit. Paths recorded by the tracker are
// all uppercase, so each recovered source path is re-cased against the
// filesystem before it lands in the entry. The first entry for a given
// canonical file wins; later duplicates are skipped.
func CreateCompileCommands(fsys vsfs.FS, buildDir string, tlogFiles []string) ([]CompileCommand, error) {
	var commands []CompileCommand
	seen := make(map[string]bool)

	for _, file := range tlogFiles {
		log.Debugf("file: %s", file)

		data, err := fsys.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open %s: %v", textenc.ErrUnreadableStream, file, err)
		}

		lines := textenc.DecodeLines(data)
		log.Debugf("num lines: %d", len(lines))

		for _, line := range lines {
			if !IsCommandLine(line) {
				continue
			}
			log.Debugf("command: %s", line)

			flags, source, err := parseCommandLine(line)
			if err != nil {
				return nil, err
			}

			resolved, err := CorrectCasing(fsys, source)
			if err != nil {
				return nil, err
			}
			log.Debugf("source file: %s", resolved)

			key := strings.ToLower(resolved)
			if seen[key] {
				continue
			}
			seen[key] = true

			commands = append(commands, CompileCommand{
				Directory: buildDir,
				Command:   compilerName + " " + flags + resolved,
				File:      resolved,
			})
		}
	}

	return commands, nil
}
