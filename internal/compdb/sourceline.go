package compdb

import (
	"fmt"
	"strings"

	"github.com/ryanjeffares/compdb-vs/internal/vspath"
)

// CommandMarker prefixes every compiler invocation line in a tlog.
const CommandMarker = "/c"

// compilerName is prepended to the reconstructed command so downstream
// tools see a complete invocation.
const compilerName = "cl.exe"

// IsCommandLine reports whether a tlog line records a compiler invocation.
func IsCommandLine(line string) bool {
	return strings.HasPrefix(line, CommandMarker)
}

// endsInSource reports whether a command line ends in a compilable source
// extension.
func endsInSource(line string) bool {
	for _, ext := range compilableExtensions {
		if strings.HasSuffix(line, ext) {
			return true
		}
	}
	return false
}

// sourcePathStart scans line backward for the rightmost drive letter
// marker (an alphabetic character immediately followed by ':'). Everything
// from there to the end of the line is the absolute source path. The scan
// runs from the end because flag values earlier in the line may themselves
// contain colons or path-like text.
func sourcePathStart(line string) (int, bool) {
	for i := len(line) - 2; i > 0; i-- {
		if isAlpha(line[i]) && line[i+1] == ':' {
			return i, true
		}
	}
	return 0, false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseCommandLine validates a /c line and splits it into the flag text
// and the absolute source path recorded at its end.
func parseCommandLine(line string) (flags, source string, err error) {
	if !endsInSource(line) {
		return "", "", fmt.Errorf("%w: %s", ErrMalformedCommandLine, line)
	}
	start, ok := sourcePathStart(line)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrSourceFileNotFound, line)
	}
	return line[:start], line[start:], nil
}

// isObjectiveC reports whether path names an Objective-C translation
// unit. Resolved paths carry on-disk casing, so the match is folded.
func isObjectiveC(path string) bool {
	ext := vspath.Ext(path)
	for _, objc := range objcExtensions {
		if strings.EqualFold(ext, objc) {
			return true
		}
	}
	return false
}
