// Package export serializes extracted grids for tabular consumers. It is a
// thin pass-through over Grid.Records: column order follows the grid's
// headers and no detection or coercion logic lives here.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/porcej/dxgridparser/grid"
)

// Format defines the available export formats.
type Format int

const (
	// FormatCSV exports as comma-separated values with a header row.
	FormatCSV Format = iota
	// FormatTSV exports as tab-separated values with a header row.
	FormatTSV
	// FormatJSON exports as a JSON array of records.
	FormatJSON
	// FormatJSONL exports as JSON Lines (one record per line).
	FormatJSONL
	// FormatMarkdown exports as a Markdown pipe table.
	FormatMarkdown
)

// String returns a human-readable representation of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for the format.
func (f Format) FileExtension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// Config holds export options.
type Config struct {
	// Format specifies the export format.
	Format Format

	// Delimiter overrides the field delimiter for CSV export. Zero means
	// comma; FormatTSV ignores it.
	Delimiter rune

	// IncludeMetadata prepends the grid metadata as a JSON object line
	// (JSONL) or wraps records with it (JSON). CSV/TSV/Markdown ignore it.
	IncludeMetadata bool
}

// DefaultConfig returns a CSV export configuration.
func DefaultConfig() Config {
	return Config{Format: FormatCSV}
}

// Write serializes the grid to w according to cfg.
func Write(w io.Writer, g *grid.Grid, cfg Config) error {
	switch cfg.Format {
	case FormatCSV, FormatTSV:
		return writeDelimited(w, g, cfg)
	case FormatJSON:
		return writeJSON(w, g, cfg)
	case FormatJSONL:
		return writeJSONL(w, g, cfg)
	case FormatMarkdown:
		return writeMarkdown(w, g)
	default:
		return fmt.Errorf("unsupported export format: %v", cfg.Format)
	}
}

// WriteFile serializes the grid to the named file, creating or truncating
// it.
func WriteFile(path string, g *grid.Grid, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, g, cfg); err != nil {
		return err
	}
	return f.Close()
}

func writeDelimited(w io.Writer, g *grid.Grid, cfg Config) error {
	cw := csv.NewWriter(w)
	switch {
	case cfg.Format == FormatTSV:
		cw.Comma = '\t'
	case cfg.Delimiter != 0:
		cw.Comma = cfg.Delimiter
	}

	if err := cw.Write(g.Headers); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	row := make([]string, len(g.Headers))
	for _, rec := range g.Rows {
		for i, h := range g.Headers {
			row[i] = formatScalar(rec[h])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, g *grid.Grid, cfg Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if cfg.IncludeMetadata {
		return enc.Encode(map[string]any{
			"metadata": g.Metadata,
			"headers":  g.Headers,
			"rows":     g.Records(),
		})
	}
	return enc.Encode(g.Records())
}

func writeJSONL(w io.Writer, g *grid.Grid, cfg Config) error {
	enc := json.NewEncoder(w)
	if cfg.IncludeMetadata && len(g.Metadata) > 0 {
		if err := enc.Encode(g.Metadata); err != nil {
			return err
		}
	}
	for _, rec := range g.Records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown(w io.Writer, g *grid.Grid) error {
	if len(g.Headers) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("|")
	for _, h := range g.Headers {
		sb.WriteString(" " + escapeMarkdown(h) + " |")
	}
	sb.WriteString("\n|")
	for range g.Headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, rec := range g.Rows {
		sb.WriteString("|")
		for _, h := range g.Headers {
			sb.WriteString(" " + escapeMarkdown(formatScalar(rec[h])) + " |")
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// formatScalar renders a coerced cell value back to text for delimited and
// markdown output.
func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// escapeMarkdown escapes characters that break markdown tables.
func escapeMarkdown(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '|':
			sb.WriteString("\\|")
		case '\n':
			sb.WriteString(" ")
		case '\r':
			// Skip.
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
