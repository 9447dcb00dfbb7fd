// Package render implements the `render` subcommand: read a generated
// board JSON file and print an ASCII grid, adapted from the example
// pack's pkg/common/render.go glyph-map style.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mines/noguess/pkg/mineout"
)

var inPath string

// GetCommand returns the `render` subcommand.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a generated board file as ASCII",
		RunE:  run,
	}
	cmd.Flags().StringVar(&inPath, "in", "board.json", "input board file path")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	var doc mineout.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", inPath, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s board %dx%d (seed %s, %d attempts)\n", doc.Variant, doc.Rows, doc.Cols, doc.Seed, doc.Attempts)
	for _, row := range doc.Cells {
		for _, v := range row {
			b.WriteString(glyph(v))
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
	return nil
}

func glyph(v int8) string {
	switch {
	case v == -1:
		return " *"
	case v == -3:
		return " ~"
	case v == -2:
		return " ."
	case v == 0:
		return " ·"
	default:
		return fmt.Sprintf("%2d", v)
	}
}
