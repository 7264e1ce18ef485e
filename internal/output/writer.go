package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/sections-go/internal/utils"
)

// Writer writes one CSV file per river into the output directory.
type Writer struct {
	baseDir string
	dryRun  bool
}

// WriterOptions contains options for the writer.
type WriterOptions struct {
	BaseDir string
	DryRun  bool
}

// NewWriter creates a new output writer.
func NewWriter(opts WriterOptions) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	return &Writer{
		baseDir: opts.BaseDir,
		dryRun:  opts.DryRun,
	}
}

// EnsureBaseDir creates the output directory if it doesn't exist.
func (w *Writer) EnsureBaseDir() error {
	if w.dryRun {
		return nil
	}
	return os.MkdirAll(w.baseDir, 0755)
}

// Path returns the output path for a river's short name.
func (w *Writer) Path(shortName string) string {
	return filepath.Join(w.baseDir, utils.SanitizeFilename(shortName)+".csv")
}

// WriteRiver writes the header plus the river's data rows to
// <short_name>.csv.
func (w *Writer) WriteRiver(shortName string, rows []string) error {
	if w.dryRun {
		return nil
	}

	path := w.Path(shortName)

	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
