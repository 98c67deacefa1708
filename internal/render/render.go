// Package render prints boards, search paths and run reports to a console.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/blindsearch/puzzle"
	"github.com/katalvlaran/blindsearch/search"
)

const (
	blankColor  = "#f472b6"
	actionColor = "#818cf8"
	goalColor   = "#34d399"
)

// Renderer writes human-readable output. With the Ascii profile it emits
// no escape sequences.
type Renderer struct {
	w       io.Writer
	profile termenv.Profile
}

// New returns a Renderer writing to w. Color is used only when color is true
// and the environment supports it.
func New(w io.Writer, color bool) *Renderer {
	p := termenv.Ascii
	if color {
		p = termenv.EnvColorProfile()
	}

	return &Renderer{w: w, profile: p}
}

func (r *Renderer) paint(s, hex string, bold bool) string {
	if r.profile == termenv.Ascii {
		return s
	}
	st := termenv.String(s).Foreground(r.profile.Color(hex))
	if bold {
		st = st.Bold()
	}

	return st.String()
}

// Board renders any State: puzzle boards as a 3×3 grid with the blank
// highlighted, other states by their key.
func (r *Renderer) Board(s search.State) string {
	b, ok := s.(puzzle.Board)
	if !ok {
		return s.Key()
	}
	var sb strings.Builder
	for row := 0; row < puzzle.Size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		cells := make([]string, puzzle.Size)
		for col := 0; col < puzzle.Size; col++ {
			v := fmt.Sprint(b[row][col])
			if b[row][col] == puzzle.Blank {
				v = r.paint(v, blankColor, true)
			}
			cells[col] = v
		}
		sb.WriteString("[" + strings.Join(cells, ", ") + "]")
	}

	return sb.String()
}

// VisitHeader announces the visit listing.
func (r *Renderer) VisitHeader() {
	fmt.Fprintln(r.w, "Visit order:")
	fmt.Fprintln(r.w)
}

// Visit prints one expanded Node. It is meant to be passed to
// search.WithOnExpand.
func (r *Renderer) Visit(n *search.Node) {
	fmt.Fprintln(r.w, r.Board(n.State))
	fmt.Fprintln(r.w)
}

// Path prints every step of a solved result followed by its length and the
// elapsed time; an unreachable result prints a single line.
func (r *Renderer) Path(res *search.Result, elapsed time.Duration) {
	if !res.Found() {
		fmt.Fprintf(r.w, "No solution (%s, %d states explored)\n", res.Mode, res.Stats.Generated)
		fmt.Fprintf(r.w, "Elapsed: %s\n", elapsed)
		return
	}
	fmt.Fprintln(r.w, "Path from the start state to the goal:")
	fmt.Fprintln(r.w)
	for n := range res.Goal.Path() {
		label := "Start"
		if !n.Action.IsStart() {
			label = n.Action.Name
		}
		fmt.Fprintln(r.w, r.paint(label, actionColor, true))
		board := r.Board(n.State)
		if n == res.Goal {
			board = r.paint(board, goalColor, false)
		}
		fmt.Fprintln(r.w, board)
		fmt.Fprintln(r.w)
	}
	fmt.Fprintf(r.w, "Path length: %d states (%d moves)\n", len(res.Path), res.Steps())
	fmt.Fprintf(r.w, "Expanded: %d, generated: %d\n", res.Stats.Expanded, res.Stats.Generated)
	fmt.Fprintf(r.w, "Elapsed: %s\n", elapsed)
}

// Report is the machine-readable form of one run.
type Report struct {
	RunID       string       `json:"run_id"`
	Mode        string       `json:"mode"`
	Outcome     string       `json:"outcome"`
	Start       string       `json:"start"`
	Steps       int          `json:"steps"`
	Actions     []string     `json:"actions,omitempty"`
	States      []string     `json:"states,omitempty"`
	Stats       search.Stats `json:"stats"`
	ElapsedSecs float64      `json:"elapsed_seconds"`
	Error       string       `json:"error,omitempty"`
}

// NewReport summarises res. For a solved run the first Actions entry is the
// start sentinel.
func NewReport(runID string, start search.State, res *search.Result, elapsed time.Duration) Report {
	rep := Report{
		RunID:       runID,
		Mode:        res.Mode.String(),
		Outcome:     res.Outcome.String(),
		Start:       start.Key(),
		Steps:       res.Steps(),
		Stats:       res.Stats,
		ElapsedSecs: elapsed.Seconds(),
	}
	for _, n := range res.Path {
		rep.Actions = append(rep.Actions, n.Action.Name)
		rep.States = append(rep.States, n.State.Key())
	}

	return rep
}

// JSON writes v as indented JSON followed by a newline.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// Comparison is one row of the compare table.
type Comparison struct {
	Mode    search.Mode
	Result  *search.Result
	Elapsed time.Duration
}

// Compare prints a table with one row per mode.
func (r *Renderer) Compare(rows []Comparison) error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tOUTCOME\tSTEPS\tEXPANDED\tGENERATED\tPEAK FRONTIER\tELAPSED")
	for _, c := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			c.Mode, c.Result.Outcome, c.Result.Steps(),
			c.Result.Stats.Expanded, c.Result.Stats.Generated, c.Result.Stats.MaxFrontier,
			c.Elapsed.Round(time.Microsecond))
	}

	return tw.Flush()
}
