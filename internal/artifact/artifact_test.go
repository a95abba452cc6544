package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWritePrettyPrints(t *testing.T) {
	p := filepath.Join(t.TempDir(), "api_response.json")
	if err := Write(p, []byte(`{"ok": true}`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"ok\": true\n}"; string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestWriteOverwritesAndKeepsOrder(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "out.json")
	if err := Write(p, []byte(`{"first": 1, "second": 2, "third": 3}`)); err != nil {
		t.Fatal(err)
	}
	if err := Write(p, []byte(`{"z":"Ljubić","a":[1,2]}`)); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"z\": \"Ljubić\",\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestWriteRejectsInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")
	if err := Write(p, []byte("server error")); err == nil {
		t.Fatal("Write() error = nil, want error")
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("file exists after failed write: %v", err)
	}
}

func TestWriteRejectsEmptyPath(t *testing.T) {
	if err := Write("", []byte(`{}`)); err == nil {
		t.Fatal("Write(\"\") error = nil, want error")
	}
}
