package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestSaveWritesArray(t *testing.T) {
	d, _ := model.ParseDate("03-04-2030")
	items := []*model.Item{
		model.NewItem("A", "line1\nline2", d),
		nil,
		model.NewItem("B", "", d),
	}
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := Save(path, items); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []model.Item
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, b)
	}
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	// JSON keeps the newline the text file would flatten.
	if got[0].Detail != "line1\nline2" || got[1].Deadline != d {
		t.Errorf("unexpected export: %+v", got)
	}
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := Save(path, nil); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "[]\n" {
		t.Errorf("got %q", b)
	}
}
