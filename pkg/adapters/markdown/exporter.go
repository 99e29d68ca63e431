// Package markdown exports notes as Markdown files with YAML frontmatter.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/nfa/pkg/core"
)

// Ext is the extension of exported files.
const Ext = ".md"

// ErrUnsafeID is returned for IDs that cannot be used as a file name in Dir.
var ErrUnsafeID = errors.New("note ID is not a plain file name")

// frontmatter is the YAML header of an exported note.
type frontmatter struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// Exporter writes one {id}.md file per note into Dir.
type Exporter struct {
	Dir    string
	Logger *slog.Logger
}

// NewExporter creates an exporter targeting dir.
func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Exporter{Dir: dir, Logger: logger}
}

// Render serializes a note to Markdown with frontmatter.
func Render(n core.Note) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontmatter{
		ID:        n.ID,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")

	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// Export writes every note atomically and returns how many were written.
// Existing files with the same name are replaced; other files are left alone.
func (e *Exporter) Export(ctx context.Context, notes []core.Note) (int, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	for i, n := range notes {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if n.ID == "" || filepath.Base(n.ID) != n.ID {
			return i, fmt.Errorf("note %q: %w", n.ID, ErrUnsafeID)
		}
		data, err := Render(n)
		if err != nil {
			return i, fmt.Errorf("failed to render note %s: %w", n.ID, err)
		}

		path := filepath.Join(e.Dir, n.ID+Ext)
		if err := writeFileAtomic(path, data, 0644); err != nil {
			return i, err
		}
		e.Logger.Debug("exported note", "id", n.ID, "path", path)
	}

	return len(notes), nil
}
