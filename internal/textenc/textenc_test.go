package textenc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}
	return out
}

func utf16BE(s string) []byte {
	out := []byte{0xFE, 0xFF}
	for i := 0; i < len(s); i++ {
		out = append(out, 0x00, s[i])
	}
	return out
}

func TestDecodeLines(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want []string
	}{
		{
			name: "utf16 little endian",
			data: utf16LE("Hello"),
			want: []string{"Hello"},
		},
		{
			name: "utf16 big endian",
			data: utf16BE("Hello\r\nWorld"),
			want: []string{"Hello", "World"},
		},
		{
			name: "plain ascii",
			data: []byte("Hello\nWorld\n!"),
			want: []string{"Hello", "World", "!"},
		},
		{
			name: "crlf separators",
			data: []byte("a\r\nb\r\n"),
			want: []string{"a", "b", ""},
		},
		{
			name: "empty",
			data: nil,
			want: []string{""},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeLines(tc.data)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DecodeLines diff -want +got:\n%s", diff)
			}
		})
	}
}

func TestDetectEncoding(t *testing.T) {
	enc, payload := DetectEncoding([]byte{0xFF, 0xFE, 'H', 0x00})
	if enc != UTF16LittleEndian || len(payload) != 2 {
		t.Errorf("DetectEncoding LE = %v, payload %d bytes", enc, len(payload))
	}

	enc, payload = DetectEncoding([]byte("plain"))
	if enc != UTF8 || string(payload) != "plain" {
		t.Errorf("DetectEncoding plain = %v %q", enc, payload)
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("one\ntwo"))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two"}, lines); diff != "" {
		t.Errorf("ReadLines diff -want +got:\n%s", diff)
	}

	if _, err := ReadLines(failingReader{}); !errors.Is(err, ErrUnreadableStream) {
		t.Errorf("ReadLines error = %v, want ErrUnreadableStream", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}
