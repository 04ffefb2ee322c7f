package universe

import (
	"context"
	"sync"
	"time"
)

//BaseUniverse is the base universe's engine
//implements Universe interface
//holds exactly one current generation, Step replaces it at once so viewers never see a partial board
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	current struct {
		gen Generation
		sync.RWMutex
	}
	stateCh chan Status
	views   []Viewer
}

//NewBaseUniverse creates the BaseUniverse instance around the first generation
//stateCh may be nil, status updates are dropped when nobody is ready to receive them
func NewBaseUniverse(o *Options, gen Generation, stateCh chan Status) *BaseUniverse {
	if o == nil {
		opts := DefaultUniverseOptions
		o = &opts
	}
	u := BaseUniverse{
		options: *o,
		stateCh: stateCh,
	}
	u.options.Advanced = map[string]interface{}{
		"engine": o.Engine,
	}
	if sg, ok := gen.(*SparseGeneration); ok {
		u.options.Advanced["Simulated positions"] = sg.Positions()
	}
	u.current.gen = gen
	u.state.LiveCells = gen.LiveCells()
	return &u
}

//RegisterViewer registers the viewer - the universe will call the viewer on every frame
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Generation returns the current generation
func (u *BaseUniverse) Generation() Generation {
	u.current.RLock()
	defer u.current.RUnlock()
	return u.current.gen
}

//Run renders the current generation, calculates the next one and waits for the interval, until
//the context is done, MaxSteps generations were calculated or, with StopWhenStable, the board stops changing
//returns ctx.Err() on cancellation and the first viewer error as is
func (u *BaseUniverse) Run(ctx context.Context) error {
	u.switchRunningState(RunningStateRun)
	defer u.switchRunningState(RunningStateFinished)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := u.refreshView(); err != nil {
			return err
		}
		maxIter := u.options.MaxSteps
		if maxIter != 0 && u.Status().IterationNum >= maxIter {
			return nil
		}
		if changed := u.step(); !changed {
			return nil
		}
		if u.options.Interval <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(u.options.Interval):
		}
	}
}

//Step does the new one state calculation for entire universe
func (u *BaseUniverse) Step() {
	u.step()
}

func (u *BaseUniverse) step() (changed bool) {
	rm := u.Status().RunningMode
	u.switchRunningState(RunningStateStep)
	defer u.switchRunningState(rm)

	start := time.Now()
	prev := u.Generation()
	next := prev.Next()

	u.current.Lock()
	u.current.gen = next
	u.current.Unlock()

	u.state.Lock()
	u.state.IterationNum++
	u.state.LiveCells = next.LiveCells()
	u.state.IterationTime = time.Since(start)
	u.state.Unlock()

	if !u.options.StopWhenStable {
		return true
	}
	return !Equal(prev, next)
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		select {
		case u.stateCh <- st:
		default:
		}
	}
}

//refreshView calls Refresh for all registered views
func (u *BaseUniverse) refreshView() error {
	for _, v := range u.views {
		if err := v.Refresh(); err != nil {
			return err
		}
	}
	return nil
}
