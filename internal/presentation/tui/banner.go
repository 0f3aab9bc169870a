package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes a one-line title, coloured when w is a terminal.
func PrintBanner(w io.Writer, version string) {
	name := "macexpect"
	tag := "v" + strings.TrimSpace(version)
	desc := "exact expectations for duty-cycled MAC polling"

	if IsTerminal(w) {
		out := termenv.NewOutput(w)
		p := out.ColorProfile()
		name = out.String(name).Bold().Foreground(p.Color("#818cf8")).String()
		tag = out.String(tag).Foreground(p.Color("#c084fc")).String()
		desc = out.String(desc).Faint().String()
	}

	fmt.Fprintf(w, "%s %s - %s\n", name, tag, desc)
}
