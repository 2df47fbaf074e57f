// Package textenc decodes the byte content of tlog files. MSBuild writes
// them as UTF-16 little endian with a byte order mark, but plain ASCII
// files show up too, so the encoding is sniffed from the first two bytes.
package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnreadableStream reports that a log file could not be opened or read.
var ErrUnreadableStream = errors.New("unreadable stream")

// Encoding is a detected file encoding.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LittleEndian
	UTF16BigEndian
)

// DetectEncoding sniffs the byte order mark at the start of data and
// returns the encoding plus the payload with the mark removed.
func DetectEncoding(data []byte) (Encoding, []byte) {
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			return UTF16LittleEndian, data[2:]
		case data[0] == 0xFE && data[1] == 0xFF:
			return UTF16BigEndian, data[2:]
		}
	}
	return UTF8, data
}

// DecodeLines decodes data per its byte order mark and splits the text
// into lines. Lines are separated by '\n' with one trailing '\r' stripped
// per line. UTF-16 variants are decoded by dropping the zero byte of each
// code unit, which suffices because tlog content is ASCII-range only.
func DecodeLines(data []byte) []string {
	encoding, payload := DetectEncoding(data)

	var text string
	switch encoding {
	case UTF16LittleEndian:
		text = dropBytes(payload, 0)
	case UTF16BigEndian:
		text = dropBytes(payload, 1)
	default:
		text = string(payload)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ReadLines decodes every line of r.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableStream, err)
	}
	return DecodeLines(data), nil
}

// dropBytes keeps one byte out of every UTF-16 code unit, starting at
// offset (0 for little endian, 1 for big endian).
func dropBytes(data []byte, offset int) string {
	var sb strings.Builder
	sb.Grow(len(data) / 2)
	for i := offset; i < len(data); i += 2 {
		sb.WriteByte(data[i])
	}
	return sb.String()
}
