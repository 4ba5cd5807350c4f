package perft

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is the outcome of one perft run.
type Report struct {
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
	Split   []Result // empty for a plain count
}

// NPS returns nodes per second, or 0 for an instantaneous run.
func (r Report) NPS() uint64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / secs)
}

// Write prints one "action : nodes" line per split entry followed by the
// summary line "<nodes> nodes <nps> nps".
func (r Report) Write(w io.Writer) error {
	for _, res := range r.Split {
		if _, err := fmt.Fprintf(w, "%v : %d\n", res.Action, res.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.Summary())
	return err
}

// Summary returns the machine-readable summary line.
func (r Report) Summary() string {
	return fmt.Sprintf("%d nodes %d nps", r.Nodes, r.NPS())
}

// String returns a human-readable summary with digit grouping.
func (r Report) String() string {
	return message.NewPrinter(language.English).Sprintf("depth %d: %s nodes in %v (%d nps)",
		r.Depth, humanize.Comma(int64(r.Nodes)), r.Elapsed.Round(time.Millisecond), r.NPS())
}
