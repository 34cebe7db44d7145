// Package render emits the deal-family artifacts the SnackBuddy site is
// built from: the machine-readable JSON feed and the static HTML page.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// createFile opens path for writing, creating parent directories first.
func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // output path from trusted config
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

// JSON writes the family list as indented JSON. Field order follows the
// struct definitions, so identical input produces byte-identical output.
func JSON(w io.Writer, fams []domain.DealFamily) error {
	if fams == nil {
		fams = []domain.DealFamily{}
	}

	data, err := json.MarshalIndent(fams, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding deals: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing deals: %w", err)
	}
	return nil
}

// WriteJSONFile writes the JSON feed to path, creating parent
// directories as needed.
func WriteJSONFile(path string, fams []domain.DealFamily) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}

	if err := JSON(f, fams); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
