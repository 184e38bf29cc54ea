package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenBook_SurfacesSkippedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	content := "id,date,kind,category,description,amount\n" +
		"1,2025-01-10,expense,food,ok,100\n" +
		"2,not-a-date,expense,food,bad,100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	old := *ledgerFile
	*ledgerFile = path
	t.Cleanup(func() { *ledgerFile = old })

	b, err := openBook()
	if err != nil {
		t.Fatalf("openBook: %v", err)
	}
	if b.Ledger().Len() != 1 {
		t.Errorf("records = %d, want 1", b.Ledger().Len())
	}
	if len(b.Warnings()) != 1 {
		t.Fatalf("warnings = %v, want exactly one", b.Warnings())
	}
	if got := b.Warnings()[0].String(); !strings.Contains(got, "line 3") {
		t.Errorf("warning %q does not name the skipped line", got)
	}
}
