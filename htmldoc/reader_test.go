package htmldoc

import (
	"os"
	"strings"
	"testing"

	"github.com/porcej/dxgridparser/grid"
)

func TestOpenReader_SimpleHTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>Quarterly Report</title>
	<meta name="author" content="Test Author">
	<meta name="description" content="Test description">
</head>
<body>
	<p>Body text.</p>
</body>
</html>`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "Quarterly Report" {
		t.Errorf("Title() = %q, want 'Quarterly Report'", r.Title())
	}
	if r.Metadata()["author"] != "Test Author" {
		t.Errorf(`Metadata()["author"] = %q, want "Test Author"`, r.Metadata()["author"])
	}
	if r.Root() == nil {
		t.Error("Root() = nil")
	}
}

func TestOpenReader_MalformedHTML(t *testing.T) {
	// The HTML parser is lenient; malformed markup still parses.
	r, err := OpenReader(strings.NewReader(`<html><body><p>unclosed`))
	if err != nil {
		t.Fatalf("OpenReader() should handle malformed HTML: %v", err)
	}
	defer r.Close()
}

func TestOpenReader_SniffsMetaCharset(t *testing.T) {
	// windows-1252 bytes with a meta declaration: 0xE9 is é.
	html := "<html><head><meta charset=\"windows-1252\"><title>caf\xe9</title></head><body></body></html>"

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "café" {
		t.Errorf("Title() = %q, want %q", r.Title(), "café")
	}
}

func TestOpenReaderCharset(t *testing.T) {
	html := "<html><head><title>caf\xe9</title></head><body></body></html>"

	r, err := OpenReaderCharset(strings.NewReader(html), "windows-1252")
	if err != nil {
		t.Fatalf("OpenReaderCharset() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "café" {
		t.Errorf("Title() = %q, want %q", r.Title(), "café")
	}
}

func TestOpenReaderCharset_UnknownName(t *testing.T) {
	_, err := OpenReaderCharset(strings.NewReader("<html></html>"), "no-such-charset")
	if err == nil {
		t.Error("OpenReaderCharset() expected error for unknown charset name")
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.html")
	if err == nil {
		t.Error("Open() expected error for nonexistent file")
	}
}

func TestOpen_ValidFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test-*.html")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	tmpFile.WriteString(`<html><body>
		<div class="dxgvControl">
			<table><tr><th>A</th></tr><tr><td>1</td></tr></table>
		</div>
	</body></html>`)
	tmpFile.Close()

	r, err := Open(tmpFile.Name())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	grids, warnings := r.Grids(grid.DefaultMarkers())
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(grids) != 1 {
		t.Fatalf("Grids() found %d grids, want 1", len(grids))
	}
	if grids[0].Rows[0]["A"] != 1 {
		t.Errorf(`Rows[0]["A"] = %v, want 1`, grids[0].Rows[0]["A"])
	}
}

func TestReader_Close(t *testing.T) {
	r, _ := OpenReader(strings.NewReader(`<html><body></body></html>`))

	if err := r.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Second Close() failed: %v", err)
	}
}
