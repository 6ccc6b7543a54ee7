package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestImageRefFromLine(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"![](https://example.com/fig.png)", "https://example.com/fig.png"},
		{"  ![](local/fig.jpg)  ", "local/fig.jpg"},
		{"prefix ![](x.png)", ""},
		{"@question what is this", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ImageRefFromLine(tt.line); got != tt.want {
			t.Errorf("ImageRefFromLine(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestResolver_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.png")
	if err := os.WriteFile(path, []byte("image-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := NewResolver().Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("unexpected data %q", data)
	}
}

func TestResolver_LocalFileMissing(t *testing.T) {
	_, err := NewResolver().Resolve(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolver_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote-bytes"))
	}))
	defer srv.Close()

	data, err := NewResolver().Resolve(context.Background(), srv.URL+"/fig.png")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if string(data) != "remote-bytes" {
		t.Errorf("unexpected data %q", data)
	}
}

func TestResolver_HTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewResolver().Resolve(context.Background(), srv.URL+"/fig.png")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}
