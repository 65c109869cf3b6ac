package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/muesli/termenv"
)

var responseColors = map[domain.Response]string{
	domain.ResponseBusy:      "#f59e0b",
	domain.ResponseFailed:    "#ef4444",
	domain.ResponseSucceeded: "#22c55e",
	domain.ResponseUnknown:   "#9ca3af",
}

// Printer writes tick results to a terminal.
type Printer struct {
	w       io.Writer
	profile termenv.Profile
}

// NewPrinter returns a Printer writing to w. Without color, output is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	return &Printer{w: w, profile: profile}
}

// Profile returns the color profile used by the printer.
func (p *Printer) Profile() termenv.Profile { return p.profile }

// Response renders r in its color.
func (p *Printer) Response(r domain.Response) string {
	return p.profile.String(r.String()).Foreground(p.profile.Color(responseColors[r])).String()
}

// Tick prints the root response of tick n.
func (p *Printer) Tick(n int, r domain.Response) {
	label := p.profile.String(fmt.Sprintf("tick %d", n)).Bold()
	fmt.Fprintf(p.w, "%s: %s\n", label, p.Response(r))
}

// Diffs prints the nodes that changed during a tick.
func (p *Printer) Diffs(diffs []domain.NodeDiff) {
	for _, d := range diffs {
		var changes []string
		if d.State != nil {
			changes = append(changes, "state="+d.State.String())
		}
		if d.Response != nil {
			changes = append(changes, "response="+p.Response(*d.Response))
		}
		fmt.Fprintf(p.w, "  %s (%s) %s\n", d.ID, d.Kind, strings.Join(changes, " "))
	}
}

// Summary prints the outcome of a run.
func (p *Printer) Summary(ticks int, r domain.Response, elapsed time.Duration) {
	fmt.Fprintf(p.w, "%d ticks in %s, root %s\n", ticks, elapsed.Round(time.Millisecond), p.Response(r))
}
