package format

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/safeseq"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // target line length in fixed-width positions
	Context   *uax11.Context // context for measuring character widths
	MarkColor *color.Color   // color for marked cells, defaults to bold red
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Console writes a table of the slots of a to w, with the end marker as a final
// cell. Cells at marked positions are highlighted, and the mark labels are
// printed below them. Long arrays are wrapped at cfg.LineWidth.
//
// If cfg is nil, a configuration is derived from the terminal and the user
// environment.
func Console[T any](w io.Writer, a *safeseq.Array[T], cfg *Config, marks ...Mark) error {
	cells, err := cellsOf(a, marks)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = ConfigFromTerminal()
		cfg.Context = uax11.ContextFromEnvironment()
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	markColor := cfg.MarkColor
	if markColor == nil {
		markColor = color.New(color.FgRed, color.Bold)
	}
	cw := 0
	for _, c := range cells {
		cw = max(cw, width(c.text, ctx), width(c.label(), ctx), width(strconv.Itoa(c.index), ctx))
	}
	cw += 2
	perLine := max(1, (cfg.LineWidth-1)/(cw+1))
	tracer().Debugf("console: %d cells of width %d, %d per line", len(cells), cw, perLine)
	//
	var out strings.Builder
	for start := 0; start < len(cells); start += perLine {
		block := cells[start:min(start+perLine, len(cells))]
		labelled := false
		for _, c := range block {
			out.WriteString("|" + pad(strconv.Itoa(c.index), cw, ctx))
			labelled = labelled || c.marked()
		}
		out.WriteString("|\n")
		for _, c := range block {
			out.WriteString("|")
			if c.marked() {
				markColor.Fprint(&out, pad(c.text, cw, ctx))
			} else {
				out.WriteString(pad(c.text, cw, ctx))
			}
		}
		out.WriteString("|\n")
		if labelled {
			for _, c := range block {
				out.WriteString("|" + pad(c.label(), cw, ctx))
			}
			out.WriteString("|\n")
		}
	}
	_, err = io.WriteString(w, out.String())
	return err
}

var graphemeSetup sync.Once

// width returns the number of fixed-width positions s occupies on a console.
func width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// pad left-aligns s in a cell of w positions, with one leading space.
func pad(s string, w int, ctx *uax11.Context) string {
	fill := w - 1 - width(s, ctx)
	if fill < 0 {
		fill = 0
	}
	return " " + s + strings.Repeat(" ", fill)
}
