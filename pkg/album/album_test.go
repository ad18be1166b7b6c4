package album

import (
	"testing"

	"github.com/spf13/afero"
)

func memAlbumFs(t *testing.T, names ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, name := range names {
		if err := afero.WriteFile(fs, name, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func TestAlbumCycles(t *testing.T) {
	a, err := NewAlbumFs(memAlbumFs(t, "a.png", "b.jpg", "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}

	var seen []string
	for i := 0; i < 4; i++ {
		name, err := a.Next()
		if err != nil {
			t.Fatal(err)
		}
		seen = append(seen, name)
	}

	want := []string{"a.png", "b.jpg", "a.png", "b.jpg"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle %v, want %v", seen, want)
		}
	}
}

func TestAlbumSkipsNonImages(t *testing.T) {
	if _, err := NewAlbumFs(memAlbumFs(t, "notes.txt", "data.bin")); err == nil {
		t.Error("album without images accepted")
	}
}

func TestAlbumHistory(t *testing.T) {
	a, err := NewAlbumFs(memAlbumFs(t, "a.png", "b.png"))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if _, err := a.Next(); err != nil {
			t.Fatal(err)
		}
	}

	names := a.History().Names()
	if len(names) != 3 {
		t.Fatalf("history keeps %d entries, want 3", len(names))
	}
}
