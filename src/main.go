package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"termlife/src/universe"
	"termlife/src/view"
)

type EnvOptions struct {
	interactive bool
	template    string
}

func main() {
	eo, uo := initOptions()

	gen, err := newGeneration(eo, uo)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	u := universe.NewBaseUniverse(uo, gen, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var out *view.ConsoleOut
	if eo.interactive {
		v, err := view.NewConsoleUI()
		if err != nil {
			log.Fatalln(err)
		}
		u.RegisterViewer(v)
		g.Go(func() error {
			//the run loop stops with the ui
			defer cancel()
			return v.Start(ctx)
		})
	} else {
		out = view.NewConsoleOut(os.Stdout, true)
		u.RegisterViewer(out)
	}

	g.Go(func() error {
		return u.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalln(err)
	}
	if out != nil {
		out.PrintSummary(os.Stderr)
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {
	opts := universe.DefaultUniverseOptions
	uo = &opts
	eo = &EnvOptions{}

	templateNames := make([]string, 0, len(universe.Templates))
	for k := range universe.Templates {
		templateNames = append(templateNames, k)
	}
	sort.Strings(templateNames)

	flaggy.SetName("termlife")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Interval between the generations, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Stop after maxSteps generations, 0 runs until interrupted")
	flaggy.Float64(&uo.Density, "d", "density", "Probability of a cell to be alive in the random first generation")
	flaggy.Int64(&uo.Seed, "", "seed", "Seed of the random first generation, 0 seeds from the clock")
	flaggy.Bool(&uo.StopWhenStable, "", "stopStable", "Stop when a generation equals the previous one")
	flaggy.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.String(&eo.template, "t", "template", "Settle with a template instead of random data ["+strings.Join(templateNames, "|")+"]")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the full screen viewer")

	flaggy.Parse()

	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}

//newGeneration builds the first generation with the chosen engine, from a template or random data
func newGeneration(eo *EnvOptions, uo *universe.Options) (universe.Generation, error) {
	build, ok := universe.Engines[uo.Engine]
	if !ok {
		return nil, errors.Errorf("unknown engine %q", uo.Engine)
	}
	seed := universe.RandomSeeder(universe.NewRandomSource(uo.Seed), uo.Density)
	if eo.template != "" {
		tmpl, ok := universe.Templates[eo.template]
		if !ok {
			return nil, errors.Errorf("unknown template %q", eo.template)
		}
		seed = tmpl.Seeder(0, 0)
	}
	return build(uo.Width, uo.Height, seed), nil
}
