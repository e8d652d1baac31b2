package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shownotes/internal/domain"
	"shownotes/internal/logger"
)

func writeTranscript(t *testing.T, dir, name, text string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	mod := time.Now().Add(-age)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestListByRecency(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "Pat_Kenny_0810.txt", "a", 48*time.Hour)
	writeTranscript(t, dir, "Hard_Shoulder_0812.txt", "b", 0)
	writeTranscript(t, dir, "Lunchtime_Live_0811.txt", "c", 24*time.Hour)
	writeTranscript(t, dir, "notes.md", "ignored", 0)

	c := New(dir, logger.New("error"))

	names, err := c.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"Hard_Shoulder_0812", "Lunchtime_Live_0811", "Pat_Kenny_0810"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %v, want %v", i, names[i], want[i])
		}
	}
}

func TestListLexicographic(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "b.txt", "b", 0)
	writeTranscript(t, dir, "a.txt", "a", time.Hour)

	c := New(dir, logger.New("error"))

	names, err := c.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("List() = %v, want [a b]", names)
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "Pat_Kenny_0810.txt", "good morning, it is ten past nine", 0)

	c := New(dir, logger.New("error"))

	text, err := c.Read(context.Background(), "Pat_Kenny_0810")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if text != "good morning, it is ten past nine" {
		t.Errorf("Read() = %q", text)
	}

	// Extension form works too
	text, err = c.Read(context.Background(), "Pat_Kenny_0810.txt")
	if err != nil {
		t.Fatalf("Read() with extension error = %v", err)
	}
	if text == "" {
		t.Error("Read() with extension returned empty text")
	}
}

func TestReadNotFound(t *testing.T) {
	c := New(t.TempDir(), logger.New("error"))

	_, err := c.Read(context.Background(), "no_such_show")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Read() error = %v, want ErrNotFound", err)
	}
}
