package view

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"termlife/src/universe"
)

//ConsoleUI is the full screen read-only viewer, the only key binding is ^C to quit
type ConsoleUI struct {
	u          universe.Universe
	g          *gocui.Gui
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize(universe.RunningStateManual, aurora.BlueFg).String(),
		universe.RunningStateStep:     universe.RunningStateStep.String(),
		universe.RunningStateRun:      aurora.Colorize(universe.RunningStateRun, aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize(universe.RunningStateFinished, aurora.RedFg).String(),
	}
)

func NewConsoleUI() (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green(universe.Alive.String()).String(),
		deadFiller: universe.Dead.String(),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, t.cmdQuit); err != nil {
		t.g.Close()
		return nil, errors.Wrap(err, "bind ^C")
	}
	return &t, nil
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

//Start runs the gui main loop until ^C is pressed or the context is done
func (t *ConsoleUI) Start(ctx context.Context) error {
	defer t.g.Close()
	stop := context.AfterFunc(ctx, func() {
		t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	})
	defer stop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "terminal main loop")
	}
	return nil
}

//Refresh queues the redraw of all panes, it is called from the simulation goroutine
func (t *ConsoleUI) Refresh() error {
	gen := t.u.Generation()
	st := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View(boardView); e == nil {
			t.drawField(v, gen)
		}
		if v, e := g.View(statusView); e == nil {
			t.drawStatus(v, st)
		}
		return nil
	})
	return nil
}

const (
	boardView         = "board"
	statusView        = "status"
	configurationView = "configuration"

	headerHeight   = 2
	panelWidth     = 28
	minPanelHeight = 6
)

//layout only creates the views and draws their first content, it must not queue updates:
//gocui calls it after every handled event
func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= panelWidth+2 || maxY <= headerHeight+2*minPanelHeight {
		//keep the last geometry until the terminal grows
		return nil
	}
	split := headerHeight + (maxY-headerHeight)/2

	if v, err := g.SetView("header", -1, -1, maxX, headerHeight); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		_, _ = fmt.Fprintln(v, " Conway's Game of Life    "+aurora.Black("^C").String()+": Exit")
	}

	if v, err := g.SetView(configurationView, 0, headerHeight, panelWidth, split-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		t.drawConfiguration(v, t.u.Options())
	}

	if v, err := g.SetView(statusView, 0, split, panelWidth, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		t.drawStatus(v, t.u.Status())
	}

	if v, err := g.SetView(boardView, panelWidth+1, headerHeight, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		t.drawField(v, t.u.Generation())
	}
	return nil
}

func (t *ConsoleUI) drawField(v *gocui.View, gen universe.Generation) {
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, fieldText(gen, maxW, maxH, t.liveFiller, t.deadFiller))
}

//fieldText renders the part of the generation which fits into maxW x maxH,
//the last visible line is replaced with a notice when the board is cropped
func fieldText(gen universe.Generation, maxW int, maxH int, liveFiller string, deadFiller string) string {
	crop := gen.Width() > maxW || gen.Height() > maxH
	var b bytes.Buffer
	for y := 0; y < gen.Height() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for x := 0; x < gen.Width() && x < maxW; x++ {
			if gen.Cell(x, y) {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) drawStatus(v *gocui.View, s universe.Status) {
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Step", "%v", s.IterationNum))
	_, _ = fmt.Fprintln(v, renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
}

func (t *ConsoleUI) drawConfiguration(v *gocui.View, c universe.Options) {
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", c.Width, c.Height))
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", c.Interval))
	_, _ = fmt.Fprintln(v, renderProp("Engine", "%v", c.Engine))
	if c.MaxSteps > 0 {
		_, _ = fmt.Fprintln(v, renderProp("Iterations", "%v steps", c.MaxSteps))
	} else {
		_, _ = fmt.Fprintln(v, renderProp("Iterations", "unlimited"))
	}
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) cmdQuit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}
