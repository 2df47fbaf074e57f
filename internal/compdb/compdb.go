// Package compdb builds a compilation database from the command lines
// recorded in MSBuild tracker logs. Sources come straight from the logs;
// header entries are synthesized by chasing each translation unit's
// include directives through its declared search paths until the closure
// stops growing.
package compdb

import "errors"

// CompileCommand is one record of the compilation database, in the format
// consumed by clangd and friends.
type CompileCommand struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

var (
	// ErrMalformedCommandLine reports a /c line that does not end in a
	// compilable source extension. That means the log format assumption
	// has broken, so it is fatal rather than skipped.
	ErrMalformedCommandLine = errors.New("command did not end with source file")
	// ErrSourceFileNotFound reports a /c line with no drive letter marker
	// to anchor the source path.
	ErrSourceFileNotFound = errors.New("couldn't find source file in command")
	// ErrPathNotFound reports that a recorded path, or one of its
	// ancestors, does not exist on disk.
	ErrPathNotFound = errors.New("path not found")
	// ErrCasingResolution reports that no directory entry matches a
	// recorded path component, so its true casing cannot be recovered.
	ErrCasingResolution = errors.New("couldn't resolve path casing")
	// ErrMalformedDirective reports a truncated /I flag value.
	ErrMalformedDirective = errors.New("malformed include directive")
)

// compilableExtensions are the extensions a tlog command line may end in.
// The tracker uppercases paths, so the match is case sensitive.
var compilableExtensions = []string{".C", ".CC", ".CPP", ".CXX", ".M", ".MM"}

// objcExtensions mark Objective-C translation units, where #import is a
// valid include directive.
var objcExtensions = []string{".m", ".mm"}
