package csvfile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"warehouse-route-prep/internal/domain"
)

// ReadTable parses a comma-delimited file whose first record is the header.
// Every row must have as many fields as the header.
func ReadTable(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read table: open %q: %w: %w", path, domain.ErrIO, err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read table: %q: %w: file is empty", path, domain.ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("read table: %q: header: %w: %w", path, domain.ErrParse, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	rows := make([][]string, 0, 1024)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table: %q: %w: %w", path, domain.ErrParse, err)
		}
		rows = append(rows, record)
	}

	return &domain.Table{Columns: header, Rows: rows}, nil
}

// WriteTable serializes t to path, header first. No index column is added.
// The parent directory must already exist.
func WriteTable(path string, t *domain.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table: create %q: %w: %w", path, domain.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write table: close %q: %w: %w", path, domain.ErrIO, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("write table: %q: header: %w: %w", path, domain.ErrIO, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write table: %q: rows: %w: %w", path, domain.ErrIO, err)
	}

	return nil
}
