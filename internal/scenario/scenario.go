package scenario

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/xgzlucario/collbench/internal/container"
	"github.com/xgzlucario/collbench/internal/element"
	"github.com/xgzlucario/collbench/internal/perf"
)

const (
	addSize    = 1000000
	lookupSize = 10000
)

// Options controls how every scenario is measured.
type Options struct {
	Runs       int  // Repetitions per measurement.
	LinkedList bool // Add a linked list row to every scenario.

	Logger zerolog.Logger
}

// Scenario is one numbered benchmark case.
type Scenario struct {
	Number      int
	Description string

	run func(o Options) ([]Measurement, error)
}

// Run generates the scenario's inputs and measures every variant.
func (s Scenario) Run(o Options) (*Report, error) {
	rows, err := s.run(o)
	if err != nil {
		return nil, fmt.Errorf("test %d (%s): %w", s.Number, s.Description, err)
	}
	return &Report{Number: s.Number, Description: s.Description, Rows: rows}, nil
}

// All returns the six scenarios in execution order.
func All() []Scenario {
	return build(addSize, lookupSize)
}

func build(addN, lookupN int) []Scenario {
	values := container.ByValue[int]()
	refs := container.ByIdentity[element.Person]()

	return []Scenario{
		{
			Number:      1,
			Description: fmt.Sprintf("Add %d value types", addN),
			run: func(o Options) ([]Measurement, error) {
				return runAdd(o, values, valueInputs(addN))
			},
		},
		{
			Number:      2,
			Description: fmt.Sprintf("Add %d reference types", addN),
			run: func(o Options) ([]Measurement, error) {
				return runAdd(o, refs, referenceInputs(addN))
			},
		},
		{
			Number:      3,
			Description: fmt.Sprintf("Run Contains() on half of %d value types", lookupN),
			run: func(o Options) ([]Measurement, error) {
				inputs := valueInputs(lookupN)
				return runContains(o, values, inputs, evenValues(inputs))
			},
		},
		{
			Number:      4,
			Description: fmt.Sprintf("Run Contains() on half of %d reference types", lookupN),
			run: func(o Options) ([]Measurement, error) {
				inputs := referenceInputs(lookupN)
				return runContains(o, refs, inputs, evenAges(inputs))
			},
		},
		{
			Number:      5,
			Description: fmt.Sprintf("Remove half of %d value types", lookupN),
			run: func(o Options) ([]Measurement, error) {
				inputs := valueInputs(lookupN)
				return runRemove(o, values, inputs, evenValues(inputs))
			},
		},
		{
			Number:      6,
			Description: fmt.Sprintf("Remove half of %d reference types", lookupN),
			run: func(o Options) ([]Measurement, error) {
				inputs := referenceInputs(lookupN)
				return runRemove(o, refs, inputs, evenAges(inputs))
			},
		},
	}
}

func valueInputs(n int) []int { return element.Range(1, n) }

func referenceInputs(n int) []*element.Person { return element.People(element.Range(1, n)) }

func evenValues(in []int) []int { return element.Filter(in, element.IsEven) }

func evenAges(in []*element.Person) []*element.Person { return element.Filter(in, element.HasEvenAge) }

// Run executes all scenarios in order and writes one report per scenario
// to w.
func Run(w io.Writer, o Options) error {
	return runAll(w, All(), o)
}

func runAll(w io.Writer, scenarios []Scenario, o Options) error {
	var rec perf.MemRecorder

	for _, s := range scenarios {
		log := o.Logger.With().Int("test", s.Number).Logger()
		log.Info().Msgf("start %q", s.Description)

		start := time.Now()
		report, err := s.Run(Options{Runs: o.Runs, LinkedList: o.LinkedList, Logger: log})
		if err != nil {
			return err
		}
		if _, err := report.WriteTo(w); err != nil {
			return err
		}
		cost := time.Since(start)

		stats := rec.Snapshot()
		log.Debug().
			Str("heap_inuse", humanize.Bytes(stats.HeapInuse)).
			Str("heap_objects", humanize.Comma(int64(stats.HeapObjects))).
			Int64("gc", stats.NumGC).
			Dur("pause", stats.Pause).
			Msg("memory")
		log.Info().Dur("cost", cost).Msg("done")
	}
	return nil
}
