package board

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// palette maps colors 0-15 to the standard and bright terminal colors, in
// the same order as the classic 30-37 / 90-97 escape codes.
var palette = [16]*color.Color{
	color.New(color.FgBlack),
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgWhite),
	color.New(color.FgHiBlack),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgHiWhite),
}

// ColorString returns the printable glyph for a color: two filled blocks
// in the matching terminal color for 0-15, a right-aligned number beyond
// the palette.
func ColorString(c int) string {
	if c >= 0 && c < len(palette) {
		return palette[c].Sprint("██")
	}
	return fmt.Sprintf("%2d", c)
}

// Render writes the board to w, one row of color glyphs per line.
func (b *Board) Render(w io.Writer) {
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			fmt.Fprint(w, ColorString(b.ColorAt(x, y)))
		}
		fmt.Fprintln(w)
	}
}
