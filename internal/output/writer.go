// Package output serializes the finished database as a
// compile_commands.json document.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ryanjeffares/compdb-vs/internal/compdb"
)

// DefaultFileName is the conventional database file name looked up by
// clangd and other consumers.
const DefaultFileName = "compile_commands.json"

// Marshal renders the entries as a pretty-printed JSON array. An empty
// database serializes as [], not null.
func Marshal(commands []compdb.CompileCommand) ([]byte, error) {
	if commands == nil {
		commands = []compdb.CompileCommand{}
	}
	data, err := json.MarshalIndent(commands, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize compile commands: %w", err)
	}
	return append(data, '\n'), nil
}

// Write serializes the entries to w.
func Write(w io.Writer, commands []compdb.CompileCommand) error {
	data, err := Marshal(commands)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the database to path. The document is marshaled fully
// before the file is touched, so a failed run never leaves a partial
// database behind.
func WriteFile(path string, commands []compdb.CompileCommand) error {
	data, err := Marshal(commands)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
