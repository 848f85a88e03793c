package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON export of the list. Human-readable, portable, write-only:
// the tab-separated file stays the source of truth.

// Write encodes items as an indented JSON array.
func Write(w io.Writer, items []*model.Item) error {
	out := make([]*model.Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes the export to path, replacing any existing file.
func Save(path string, items []*model.Item) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := Write(f, items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
