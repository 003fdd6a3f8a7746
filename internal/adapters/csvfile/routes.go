package csvfile

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"warehouse-route-prep/internal/domain"
)

// File-backed implementation of the RouteSink port.
// Out receives the saved path and a preview of the first PreviewRows rows.
type RouteFile struct {
	Path        string
	Out         io.Writer
	PreviewRows int
}

func NewRouteFile(path string, out io.Writer, previewRows int) *RouteFile {
	return &RouteFile{Path: path, Out: out, PreviewRows: previewRows}
}

func (r *RouteFile) SaveRoutes(ctx context.Context, records []domain.RouteRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("save routes: %w", err)
	}
	return SaveRoutes(r.Path, records, r.Out, r.PreviewRows)
}

// SaveRoutes writes the route dataset to path and returns its absolute location.
func SaveRoutes(path string, records []domain.RouteRecord, out io.Writer, previewRows int) (string, error) {
	table := domain.RouteTable(records)
	if err := WriteTable(path, table); err != nil {
		return "", fmt.Errorf("save routes: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if out != nil {
		fmt.Fprintf(out, "Saved dataset to %s\n", abs)
		if err := PrintPreview(out, table, previewRows); err != nil {
			return abs, fmt.Errorf("save routes: preview: %w", err)
		}
	}

	return abs, nil
}
