// Package mineout serializes a generation Result to the JSON file format
// the CLI writes, grounded on pkg/generator/api.go's writeLevelToFile in
// the example pack (MarshalIndent, overwrite guard, MkdirAll).
package mineout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mines/noguess/pkg/model"
)

// Document is the on-disk JSON shape for a generated board.
type Document struct {
	Variant  model.Variant         `json:"variant"`
	Seed     string                `json:"seed"`
	Attempts int                   `json:"attempts"`
	Rows     int                   `json:"rows"`
	Cols     int                   `json:"cols"`
	Cells    [][]int8              `json:"cells"`
	Revealed []model.TilePosition  `json:"revealed,omitempty"`
}

// ToDocument converts a Result into its serializable form.
func ToDocument(r model.Result) Document {
	cells := make([][]int8, r.Board.Rows)
	for i, row := range r.Board.Cells {
		cells[i] = make([]int8, len(row))
		for j, v := range row {
			cells[i][j] = int8(v)
		}
	}
	var revealed []model.TilePosition
	for p := range r.RevealedSet {
		revealed = append(revealed, p)
	}
	return Document{
		Variant:  r.Variant,
		Seed:     r.Seed,
		Attempts: r.Attempts,
		Rows:     r.Board.Rows,
		Cols:     r.Board.Cols,
		Cells:    cells,
		Revealed: revealed,
	}
}

// Write marshals result as indented JSON to path, refusing to clobber an
// existing file unless overwrite is set.
func Write(result model.Result, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("output file %s already exists (use --overwrite)", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(ToDocument(result), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
