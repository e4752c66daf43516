package app

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// progress rewrites a single status line while jobs run. It stays silent
// unless w is a terminal, so redirected output only carries log lines.
type progress struct {
	w     io.Writer
	tty   bool
	total int
	done  int
}

func newProgress(w io.Writer, total int) *progress {
	p := &progress{w: w, total: total}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		p.tty = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *progress) step(label string) {
	p.done++
	if p.w == nil || !p.tty {
		return
	}
	fmt.Fprintf(p.w, "\r\033[K[%d/%d] %s", p.done, p.total, label)
}

func (p *progress) finish() {
	if p.w == nil || !p.tty || p.done == 0 {
		return
	}
	fmt.Fprintln(p.w)
}
