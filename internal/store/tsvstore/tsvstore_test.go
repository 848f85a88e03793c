package tsvstore

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDecodeKeepsFileOrder(t *testing.T) {
	in := "A\tx\t01-01-2030\nB\ty\t01-01-2020\n"
	items, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Description != "A" || items[0].Detail != "x" || items[0].Deadline != date(t, "01-01-2030") {
		t.Errorf("first item: %+v", items[0])
	}
	if items[1].Description != "B" || items[1].Deadline != date(t, "01-01-2020") {
		t.Errorf("second item: %+v", items[1])
	}
}

func TestDecodeEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"empty file", "", 0, false},
		{"blank lines", "\nA\tx\t01-01-2030\n\n", 1, false},
		{"crlf", "A\tx\t01-01-2030\r\nB\t\t02-01-2030\r\n", 2, false},
		{"no trailing newline", "A\tx\t01-01-2030", 1, false},
		{"empty detail", "A\t\t01-01-2030\n", 1, false},
		{"too few fields", "A\t01-01-2030\n", 0, true},
		{"tab in field", "A\tx\ty\t01-01-2030\n", 0, true},
		{"bad date", "A\tx\t2030-01-01\n", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := Decode(strings.NewReader(tc.in))
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedLine) {
					t.Fatalf("expected ErrMalformedLine, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(items) != tc.want {
				t.Errorf("got %d items, want %d", len(items), tc.want)
			}
		})
	}
}

func TestDecodeReportsLineNumber(t *testing.T) {
	_, err := Decode(strings.NewReader("A\tx\t01-01-2030\nbroken\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected error naming line 2, got %v", err)
	}
}

func TestEncodeCollapsesNewlines(t *testing.T) {
	items := []*model.Item{
		model.NewItem("Shop", "milk\neggs\r\nbread", date(t, "05-06-2030")),
	}
	var buf bytes.Buffer
	if err := Encode(&buf, items); err != nil {
		t.Fatal(err)
	}
	want := "Shop\tmilk eggs bread\t05-06-2030\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TodoList.txt")
	in := []*model.Item{
		model.NewItem("Call mom", "about\nthe weekend", date(t, "12-12-2030")),
		model.NewItem("Taxes", "", date(t, "01-04-2030")),
		model.NewItem("Taxes", "same name, same day", date(t, "01-04-2030")),
		model.NewItem("Notes", strings.Repeat("n", 1<<20+10), date(t, "02-04-2030")),
	}
	if err := WriteFile(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d items, want %d", len(out), len(in))
	}
	for i := range in {
		want := *in[i]
		want.Detail = strings.ReplaceAll(want.Detail, "\n", " ")
		if *out[i] != want {
			t.Errorf("item %d: got %+v, want %+v", i, *out[i], want)
		}
	}
}

func TestLoadThenStoreReproducesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TodoList.txt")
	content := "A\tx\t01-01-2030\nB\ty\t01-01-2020\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, items); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
