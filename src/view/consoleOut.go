package view

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"termlife/src/universe"
)

//clearScreen is the ESC c sequence, it resets the terminal
const clearScreen = "\x1bc"

//ConsoleOut writes every frame as plain text: clear screen, the board rows and one blank line
type ConsoleOut struct {
	u         universe.Universe
	w         io.Writer
	au        aurora.Aurora
	startTime time.Time
	buf       bytes.Buffer
}

func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors)}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	c.startTime = time.Now()
}

func (c *ConsoleOut) Refresh() error {
	c.buf.Reset()
	c.buf.WriteString(clearScreen)
	c.buf.WriteString(universe.Display(c.u.Generation()))
	c.buf.WriteByte('\n')
	if _, err := c.w.Write(c.buf.Bytes()); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return nil
}

//PrintSummary prints the running configuration and the last status
func (c *ConsoleOut) PrintSummary(w io.Writer) {
	o := c.u.Options()
	st := c.u.Status()
	fmt.Fprintln(w, c.au.Bold("Running configuration:"))
	c.printHashData(w, map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Interval":       o.Interval,
		"Max iterations": o.MaxSteps,
	})
	c.printHashData(w, o.Advanced)
	fmt.Fprintln(w, c.au.Bold("Finished:"))
	c.printHashData(w, map[string]interface{}{
		"Last iteration": st.IterationNum,
		"Total time":     time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":     st.LiveCells,
	})
}

func (c *ConsoleOut) printHashData(w io.Writer, d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(w, "  %s: %v\n", c.au.Green(propName), d[propName])
	}
}
