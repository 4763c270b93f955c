// Package export writes rendered meeting documents to disk.
//
// Writes are sequential and independent per meeting: a failure partway
// through a bulk export leaves previously written files intact. There is no
// rollback and no atomic all-or-nothing semantics.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/markdown"
)

// Exporter writes meeting markdown files into a target directory.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter targeting the given directory. The
// directory is created on first write, not here.
func NewExporter(dir string) (*Exporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("export directory cannot be empty")
	}
	return &Exporter{dir: dir}, nil
}

// Dir returns the target directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// WriteMeeting renders a single meeting and writes it to the export
// directory, creating parent directories as needed. It returns the path of
// the written file.
func (e *Exporter) WriteMeeting(m fathom.Meeting, exportedAt time.Time) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.dir, markdown.Filename(m))
	doc := markdown.Meeting(m, exportedAt)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// ExportAll writes one file per meeting, sequentially and in input order.
// It stops at the first failure and returns the number of files written
// before it; files already written stay on disk.
func (e *Exporter) ExportAll(ctx context.Context, meetings []fathom.Meeting, exportedAt time.Time) (int, error) {
	for i, m := range meetings {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if _, err := e.WriteMeeting(m, exportedAt); err != nil {
			return i, err
		}
	}
	return len(meetings), nil
}
