package universe

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

//Universe is the simulation engine: it owns the current generation and moves it forward
type Universe interface {
	Status() Status
	Options() Options
	Generation() Generation
	StateCh() chan Status
	RegisterViewer(v Viewer)
	Step()
	Run(ctx context.Context) error
}

//Options represents the Universe's configurable options
type Options struct {
	Width          int
	Height         int
	Interval       time.Duration
	MaxSteps       int //0 means run until cancelled
	Density        float64
	Seed           int64 //0 means seed from the clock
	Engine         string
	StopWhenStable bool
	Advanced       map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display the current generation
type Viewer interface {
	Register(u Universe)
	Refresh() error
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefWidth              = 150
	DefHeight             = 50
	DefDensity            = 0.2
	DefEngine             = "dense"
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultUniverseOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	Density:  DefDensity,
	Engine:   DefEngine,
}

//ErrInvalidOptions is the cause of every error returned by Options.Validate
var ErrInvalidOptions = errors.New("invalid universe options")

//Validate checks the options before any generation is built
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "dimension must be positive, got %v x %v", o.Width, o.Height)
	}
	if o.Density < 0 || o.Density > 1 {
		return errors.Wrapf(ErrInvalidOptions, "density must be within [0, 1], got %v", o.Density)
	}
	if o.Interval < 0 {
		return errors.Wrapf(ErrInvalidOptions, "interval must not be negative, got %v", o.Interval)
	}
	if o.MaxSteps < 0 {
		return errors.Wrapf(ErrInvalidOptions, "maxSteps must not be negative, got %v", o.MaxSteps)
	}
	if _, ok := Engines[o.Engine]; !ok {
		return errors.Wrapf(ErrInvalidOptions, "unknown engine %q", o.Engine)
	}
	return nil
}

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "do the step"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}
