package tabgrid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/tabgrid/source"
	"github.com/tsawler/tabgrid/tables"
)

func TestAllPages_InMemory(t *testing.T) {
	pages, err := FromFragments(menuPage()).Logger(quiet()).AllPages()
	if err != nil {
		t.Fatalf("AllPages() failed: %v", err)
	}
	if len(pages) != 1 || pages[0].Number != 1 || len(pages[0].Tables) != 1 {
		t.Errorf("AllPages() = %+v", pages)
	}
}

func TestAllPages_InvalidConfig(t *testing.T) {
	_, err := FromFragments(menuPage()).MinColumns(0).AllPages()
	if !errors.Is(err, tables.ErrInvalidConfig) {
		t.Errorf("AllPages() error = %v, want ErrInvalidConfig", err)
	}
}

func TestAnalyzeDocument_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.WriteJSON(f, menuPage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pages, err := AnalyzeDocument(path)
	if err != nil {
		t.Fatalf("AnalyzeDocument() failed: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Tables) != 1 {
		t.Errorf("AnalyzeDocument() = %+v", pages)
	}
}

func TestAnalyzeDocument_UnreadablePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := AnalyzeDocument(path); !errors.Is(err, source.ErrUnreadablePDF) {
		t.Errorf("AnalyzeDocument() error = %v, want ErrUnreadablePDF", err)
	}
}

func TestFatal(t *testing.T) {
	if !fatal(tables.ErrInvalidConfig) || !fatal(source.ErrPageOutOfRange) {
		t.Error("configuration and range errors are fatal")
	}
	if fatal(source.ErrUnreadablePDF) {
		t.Error("a single unreadable page is not fatal")
	}
}
