package tsvstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

// Tab-separated storage. One item per line:
//
//	description<TAB>detail<TAB>dd-MM-yyyy
//
// There is no header and no escaping. Newlines inside detail are collapsed
// to spaces on write; a tab inside any field produces a line that will not
// load back.

const fieldSep = "\t"

// ErrMalformedLine is wrapped by Decode for lines it cannot parse.
var ErrMalformedLine = errors.New("malformed line")

// Decode reads items in file order. Blank lines are skipped.
func Decode(r io.Reader) ([]*model.Item, error) {
	items := []*model.Item{}
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}
		n++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			parts := strings.Split(line, fieldSep)
			if len(parts) != 3 {
				return nil, fmt.Errorf("line %d: %w: want 3 fields, got %d", n, ErrMalformedLine, len(parts))
			}
			d, perr := model.ParseDate(parts[2])
			if perr != nil {
				return nil, fmt.Errorf("line %d: %w: %v", n, ErrMalformedLine, perr)
			}
			items = append(items, model.NewItem(parts[0], parts[1], d))
		}
		if err == io.EOF {
			break
		}
	}
	return items, nil
}

// Encode writes one line per item, in slice order.
func Encode(w io.Writer, items []*model.Item) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if it == nil {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", it.Description, flattenDetail(it.Detail), it.Deadline); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func flattenDetail(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ReadFile loads items from path. A missing file is an error (fs.ErrNotExist).
func ReadFile(path string) ([]*model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// WriteFile overwrites path with items.
func WriteFile(path string, items []*model.Item) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := Encode(f, items); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
