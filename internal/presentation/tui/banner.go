package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"  _____     _                       _       _ ",
	" |_   _| __(_)_ __   ___  _ __ ___ (_) __ _| |",
	"   | || '__| | '_ \\ / _ \\| '_ ` _ \\| |/ _` | |",
	"   | || |  | | | | | (_) | | | | | | | (_| | |",
	"   |_||_|  |_|_| |_|\\___/|_| |_| |_|_|\\__,_|_|",
}

// Indigo to rose, one colour per banner line.
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the ASCII art banner and version to w.
// Colours are dropped automatically when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, out.String("   v"+version).Faint())
	fmt.Fprintln(w)
}
