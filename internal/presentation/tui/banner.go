package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner of araignee.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Using a subtle gradient-like color scheme (Teal/Indigo)
	lines := []struct {
		text  string
		color string
	}{
		{"                  _                        ", "#2dd4bf"},
		{"   __ _ _ __ __ _(_) __ _ _ __   ___  ___  ", "#22d3ee"},
		{"  / _` | '__/ _` | |/ _` | '_ \\ / _ \\/ _ \\ ", "#38bdf8"},
		{" | (_| | | | (_| | | (_| | | | |  __/  __/ ", "#60a5fa"},
		{"  \\__,_|_|  \\__,_|_|\\__, |_| |_|\\___|\\___| ", "#818cf8"},
		{"                    |___/                  ", "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
