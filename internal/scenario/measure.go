package scenario

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/xgzlucario/collbench/internal/container"
	"github.com/xgzlucario/collbench/internal/perf"
)

// recorder collects measurements until the first failure.
type recorder struct {
	o    Options
	rows []Measurement
	err  error
}

func newRecorder[T any](o Options, eq container.Equality[T], inputs, targets []T) *recorder {
	o.Logger.Debug().
		Str("inputs", humanize.Comma(int64(len(inputs)))).
		Str("targets", humanize.Comma(int64(len(targets)))).
		Str("equality", eq.Name).
		Int("runs", o.Runs).
		Msg("generated")
	return &recorder{o: o}
}

func (r *recorder) result() ([]Measurement, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

// step measures one container variant. It does nothing once an earlier
// step has failed.
func step[C, T any](r *recorder, label string, inputs []T, newf func() C, apply func(C, T) error) {
	if r.err != nil {
		return
	}
	ms, err := perf.Measure(inputs, newf, apply, r.o.Runs)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", label, err)
		return
	}
	r.o.Logger.Debug().Str("variant", label).Int64("avg_ms", ms).Msg("measured")
	r.rows = append(r.rows, Measurement{Label: label, Millis: ms})
}

func runAdd[T comparable](o Options, eq container.Equality[T], inputs []T) ([]Measurement, error) {
	r := newRecorder(o, eq, inputs, inputs)
	newMap := func() *container.Map[T, T] { return container.NewMap[T, T](eq, 0) }

	step(r, "HashSet.Add", inputs,
		func() *container.Set[T] { return container.NewSet[T](0) },
		func(s *container.Set[T], v T) error {
			s.Add(v)
			return nil
		})
	step(r, "List.Add", inputs,
		func() *container.List[T] { return container.NewList(eq, 0) },
		func(l *container.List[T], v T) error {
			l.Add(v)
			return nil
		})
	step(r, "Map.Insert", inputs, newMap,
		func(m *container.Map[T, T], v T) error {
			return m.Insert(v, v)
		})
	step(r, "Map[n] = n", inputs, newMap,
		func(m *container.Map[T, T], v T) error {
			m.Set(v, v)
			return nil
		})
	if o.LinkedList {
		step(r, "LinkedList.Add", inputs,
			func() *container.LinkedList[T] { return container.NewLinkedList(eq) },
			func(l *container.LinkedList[T], v T) error {
				l.Add(v)
				return nil
			})
	}

	return r.result()
}

func runContains[T comparable](o Options, eq container.Equality[T], inputs, targets []T) ([]Measurement, error) {
	r := newRecorder(o, eq, inputs, targets)
	newMap := func() *container.Map[T, T] { return container.NewIdentityMap(eq, inputs) }

	step(r, "HashSet.Contains", targets,
		func() *container.Set[T] { return container.NewSetOf(inputs) },
		func(s *container.Set[T], v T) error {
			s.Contains(v)
			return nil
		})
	step(r, "List.Contains", targets,
		func() *container.List[T] { return container.NewListOf(eq, inputs) },
		func(l *container.List[T], v T) error {
			l.Contains(v)
			return nil
		})
	step(r, "Map.ContainsKey", targets, newMap,
		func(m *container.Map[T, T], v T) error {
			m.ContainsKey(v)
			return nil
		})
	step(r, "Map.ContainsValue", targets, newMap,
		func(m *container.Map[T, T], v T) error {
			m.ContainsValue(v)
			return nil
		})
	if o.LinkedList {
		step(r, "LinkedList.Contains", targets,
			func() *container.LinkedList[T] { return container.NewLinkedListOf(eq, inputs) },
			func(l *container.LinkedList[T], v T) error {
				l.Contains(v)
				return nil
			})
	}

	return r.result()
}

func runRemove[T comparable](o Options, eq container.Equality[T], inputs, targets []T) ([]Measurement, error) {
	r := newRecorder(o, eq, inputs, targets)

	step(r, "HashSet.Remove", targets,
		func() *container.Set[T] { return container.NewSetOf(inputs) },
		func(s *container.Set[T], v T) error {
			s.Remove(v)
			return nil
		})
	step(r, "List.Remove", targets,
		func() *container.List[T] { return container.NewListOf(eq, inputs) },
		func(l *container.List[T], v T) error {
			l.Remove(v)
			return nil
		})
	step(r, "Map.Remove", targets,
		func() *container.Map[T, T] { return container.NewIdentityMap(eq, inputs) },
		func(m *container.Map[T, T], v T) error {
			m.Remove(v)
			return nil
		})
	if o.LinkedList {
		step(r, "LinkedList.Remove", targets,
			func() *container.LinkedList[T] { return container.NewLinkedListOf(eq, inputs) },
			func(l *container.LinkedList[T], v T) error {
				l.Remove(v)
				return nil
			})
	}

	return r.result()
}
