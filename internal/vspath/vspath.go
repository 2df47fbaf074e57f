// Package vspath implements lexical operations on the paths recorded in
// Visual Studio build logs. Those paths use Windows conventions (drive
// letters, backslash separators) regardless of the platform the tool runs
// on, so the standard filepath package cannot be used for them.
package vspath

import "strings"

// Separator returns the separator byte a path uses. A path containing any
// backslash is treated as backslash-separated.
func Separator(path string) byte {
	if strings.IndexByte(path, '\\') >= 0 {
		return '\\'
	}
	return '/'
}

func isSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// VolumeName returns the leading drive specifier ("C:") of a path, or ""
// if the path has none.
func VolumeName(path string) string {
	if len(path) >= 2 && path[1] == ':' && isAlpha(path[0]) {
		return path[:2]
	}
	return ""
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsRoot reports whether a path is a volume root ("C:", "C:\") or the
// POSIX root "/". Roots have no parent to decompose further.
func IsRoot(path string) bool {
	if path == "/" || path == "\\" {
		return true
	}
	vol := VolumeName(path)
	if vol == "" {
		return false
	}
	rest := path[len(vol):]
	return rest == "" || (len(rest) == 1 && isSeparator(rest[0]))
}

// Base returns the last component of a path. Roots are returned unchanged.
func Base(path string) string {
	if IsRoot(path) || path == "" {
		return path
	}
	path = trimTrailingSeparators(path)
	for i := len(path) - 1; i >= 0; i-- {
		if isSeparator(path[i]) {
			return path[i+1:]
		}
	}
	return path
}

// Dir returns the parent of a path. The parent of a root is the root
// itself; a separator-free path has parent "".
func Dir(path string) string {
	if IsRoot(path) {
		return path
	}
	path = trimTrailingSeparators(path)
	for i := len(path) - 1; i >= 0; i-- {
		if isSeparator(path[i]) {
			parent := path[:i]
			if vol := VolumeName(parent); vol == parent {
				// keep the separator so the root stays decomposed, e.g.
				// Dir(`C:\PROJ`) == `C:\`.
				return path[:i+1]
			}
			if parent == "" {
				return path[:1]
			}
			return parent
		}
	}
	return ""
}

// Ext returns the suffix of the last component starting at its final dot,
// including the dot, or "" if the component has no dot.
func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSeparator(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// Join appends elem to dir using dir's separator style. The result is not
// cleaned; pass it through Clean to collapse dot segments.
func Join(dir, elem string) string {
	if dir == "" {
		return elem
	}
	if elem == "" {
		return dir
	}
	sep := Separator(dir)
	dir = trimTrailingSeparators(dir)
	for len(elem) > 0 && isSeparator(elem[0]) {
		elem = elem[1:]
	}
	if isSeparator(dir[len(dir)-1]) {
		return dir + elem
	}
	return dir + string(sep) + elem
}

// Clean normalizes a path: separators are unified (backslash wins when the
// path mixes both), empty and "." segments are dropped, and ".." segments
// swallow the preceding component where one exists.
func Clean(path string) string {
	if path == "" {
		return ""
	}
	sep := Separator(path)
	vol := VolumeName(path)
	rest := path[len(vol):]
	rooted := len(rest) > 0 && isSeparator(rest[0])

	var out []string
	for _, seg := range splitSegments(rest) {
		switch seg {
		case "", ".":
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else if !rooted && vol == "" {
				out = append(out, seg)
			}
		default:
			out = append(out, seg)
		}
	}

	result := strings.Join(out, string(sep))
	if rooted {
		result = string(sep) + result
	}
	result = vol + result
	if result == "" {
		return "."
	}
	return result
}

func splitSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '\\' || r == '/'
	})
}

func trimTrailingSeparators(path string) string {
	for len(path) > 1 && isSeparator(path[len(path)-1]) {
		path = path[:len(path)-1]
	}
	return path
}
