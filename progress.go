package main

import (
	"fmt"
	"io"
	"sync"
)

func PrintUpdates(r *Runner, out io.Writer, ansi bool, wg *sync.WaitGroup) {
	defer wg.Done()
	if r.Progress == nil {
		return
	}
	fmt.Fprintln(out, "Starting...")
	for update := range r.Progress {
		s := ""
		pct := float64(update.Done) / float64(update.Total)
		for i := 1; i <= 20; i++ {
			if pct*20 >= float64(i) {
				s += "="
			} else {
				s += "."
			}
		}
		s = "[" + s + "]"
		s += fmt.Sprintf(" %d/%d (%s)", update.Done, update.Total, update.CurrentAction)
		if ansi {
			fmt.Fprint(out, "\033[1A\033[K")
		}
		fmt.Fprintf(out, "%s\n", s)
	}
}
