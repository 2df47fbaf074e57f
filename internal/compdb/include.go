package compdb

import (
	"fmt"
	"strings"

	"github.com/ryanjeffares/compdb-vs/internal/textenc"
)

// IncludedFile is one include directive extracted from a source file.
// Quote-form includes ("...") resolve against the including file's own
// directory before the declared search paths; angle-form (<...>) only
// against the search paths.
type IncludedFile struct {
	Target string
	Quote  bool
}

// includePathFlag introduces a search path on an MSVC command line.
const includePathFlag = "/I"

// ScanIncludes lexically extracts #include targets from the decoded text
// of a source or header file. #import is recognized too when the file is
// an Objective-C translation unit. Malformed or unterminated directives
// are skipped: comments and disabled code can resemble directives, and
// downstream analysis is best effort, not exhaustive preprocessing.
func ScanIncludes(data []byte, objectiveC bool) []IncludedFile {
	keywords := []string{"#include"}
	if objectiveC {
		keywords = append(keywords, "#import")
	}

	var includes []IncludedFile
	for _, line := range textenc.DecodeLines(data) {
		line = strings.TrimLeft(line, " \t")
		rest, ok := trimKeyword(line, keywords)
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			continue
		}
		switch rest[0] {
		case '"':
			if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
				includes = append(includes, IncludedFile{Target: rest[1 : end+1], Quote: true})
			}
		case '<':
			if end := strings.IndexByte(rest[1:], '>'); end >= 0 {
				includes = append(includes, IncludedFile{Target: rest[1 : end+1]})
			}
		}
	}
	return includes
}

func trimKeyword(line string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.HasPrefix(line, kw) {
			return line[len(kw):], true
		}
	}
	return "", false
}

// IncludePaths extracts the values of every /I flag on a command line, in
// flag order. Duplicates are preserved; resolution precedence depends on
// the declared order, so this layer does not deduplicate. A quoted value
// with no closing quote is fatal: it means the recorded command line is
// truncated.
func IncludePaths(command string) ([]string, error) {
	var paths []string
	rest := command
	for {
		i := strings.Index(rest, includePathFlag)
		if i < 0 {
			return paths, nil
		}
		rest = strings.TrimLeft(rest[i+len(includePathFlag):], " \t")
		if rest == "" {
			return paths, nil
		}
		if rest[0] == '"' {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote after %s in: %s", ErrMalformedDirective, includePathFlag, command)
			}
			paths = append(paths, rest[1:end+1])
			rest = rest[end+2:]
			continue
		}
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			paths = append(paths, rest)
			return paths, nil
		}
		paths = append(paths, rest[:end])
		rest = rest[end:]
	}
}
