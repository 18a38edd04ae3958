package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xgzlucario/collbench/internal/container"
	"github.com/xgzlucario/collbench/internal/element"
	"github.com/xgzlucario/collbench/internal/perf"
)

var testOptions = Options{Runs: 1, Logger: zerolog.Nop()}

func labels(rows []Measurement) (res []string) {
	for _, m := range rows {
		res = append(res, m.Label)
	}
	return
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	descs := []string{
		"Add 1000000 value types",
		"Add 1000000 reference types",
		"Run Contains() on half of 10000 value types",
		"Run Contains() on half of 10000 reference types",
		"Remove half of 10000 value types",
		"Remove half of 10000 reference types",
	}
	all := All()
	assert.Len(all, len(descs))
	for i, s := range all {
		assert.Equal(i+1, s.Number)
		assert.Equal(descs[i], s.Description)
	}
}

func TestScenarioRows(t *testing.T) {
	addRows := []string{"HashSet.Add", "List.Add", "Map.Insert", "Map[n] = n"}
	containsRows := []string{"HashSet.Contains", "List.Contains", "Map.ContainsKey", "Map.ContainsValue"}
	removeRows := []string{"HashSet.Remove", "List.Remove", "Map.Remove"}
	want := [][]string{addRows, addRows, containsRows, containsRows, removeRows, removeRows}

	t.Run("default", func(t *testing.T) {
		for i, s := range build(1000, 100) {
			report, err := s.Run(testOptions)
			require.NoError(t, err)
			assert.Equal(t, s.Number, report.Number)
			assert.Equal(t, want[i], labels(report.Rows))
			for _, m := range report.Rows {
				assert.GreaterOrEqual(t, m.Millis, int64(0))
			}
		}
	})

	t.Run("linkedlist", func(t *testing.T) {
		extra := []string{"LinkedList.Add", "LinkedList.Add", "LinkedList.Contains",
			"LinkedList.Contains", "LinkedList.Remove", "LinkedList.Remove"}
		o := testOptions
		o.LinkedList = true

		for i, s := range build(1000, 100) {
			report, err := s.Run(o)
			require.NoError(t, err)
			assert.Equal(t, append(append([]string{}, want[i]...), extra[i]), labels(report.Rows))
		}
	})
}

func TestInvalidRuns(t *testing.T) {
	s := build(10, 10)[0]
	_, err := s.Run(Options{Runs: 0, Logger: zerolog.Nop()})
	assert.True(t, errors.Is(err, perf.ErrInvalidRuns))
	assert.Contains(t, err.Error(), "test 1 (Add 10 value types)")
}

func TestAddDuplicateKey(t *testing.T) {
	assert := assert.New(t)

	_, err := runAdd(testOptions, container.ByValue[int](), []int{1, 2, 2, 3})
	assert.True(errors.Is(err, container.ErrDuplicateKey))
	assert.Contains(err.Error(), "Map.Insert")

	// field-equal persons are still distinct keys
	ps := []*element.Person{{Name: "TestMe", Age: 1}, {Name: "TestMe", Age: 1}}
	rows, err := runAdd(testOptions, container.ByIdentity[element.Person](), ps)
	assert.NoError(err)
	assert.Len(rows, 4)
}

func TestAddReferenceTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates one million persons")
	}
	inputs := referenceInputs(addSize)
	s := container.NewSet[*element.Person](0)
	for _, p := range inputs {
		require.True(t, s.Add(p))
	}
	assert.Equal(t, addSize, s.Len())
}

func TestContainsTargets(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		inputs := valueInputs(lookupSize)
		testContains(t, container.ByValue[int](), inputs, evenValues(inputs))
	})
	t.Run("reference", func(t *testing.T) {
		inputs := referenceInputs(lookupSize)
		testContains(t, container.ByIdentity[element.Person](), inputs, evenAges(inputs))
	})
}

func testContains[T comparable](t *testing.T, eq container.Equality[T], inputs, targets []T) {
	assert := assert.New(t)
	assert.Len(targets, lookupSize/2)

	set := container.NewSetOf(inputs)
	ls := container.NewListOf(eq, inputs)
	m := container.NewIdentityMap(eq, inputs)

	for _, v := range targets {
		assert.True(set.Contains(v))
		assert.True(ls.Contains(v))
		assert.True(m.ContainsKey(v))
		assert.Equal(m.ContainsKey(v), m.ContainsValue(v))
	}
}

func TestRemoveTargets(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		inputs := valueInputs(lookupSize)
		testRemove(t, container.ByValue[int](), inputs, evenValues(inputs))
	})
	t.Run("reference", func(t *testing.T) {
		inputs := referenceInputs(lookupSize)
		testRemove(t, container.ByIdentity[element.Person](), inputs, evenAges(inputs))
	})
}

func testRemove[T comparable](t *testing.T, eq container.Equality[T], inputs, targets []T) {
	assert := assert.New(t)

	set := container.NewSetOf(inputs)
	ls := container.NewListOf(eq, inputs)
	lls := container.NewLinkedListOf(eq, inputs)
	m := container.NewIdentityMap(eq, inputs)

	for _, v := range targets {
		assert.True(set.Remove(v))
		assert.True(ls.Remove(v))
		assert.True(lls.Remove(v))
		assert.True(m.Remove(v))
	}

	half := lookupSize / 2
	assert.Equal(half, set.Len())
	assert.Equal(half, ls.Len())
	assert.Equal(half, lls.Len())
	assert.Equal(half, m.Len())

	for _, v := range targets {
		assert.False(set.Contains(v))
		assert.False(ls.Contains(v))
		assert.False(lls.Contains(v))
		assert.False(m.ContainsKey(v))
		assert.False(m.ContainsValue(v))
		// removing again is a no-op
		assert.False(set.Remove(v))
		assert.False(m.Remove(v))
	}
}

func checkBlocks(t *testing.T, out string, scenarios []Scenario) {
	assert := assert.New(t)

	assert.Equal(len(scenarios), strings.Count(out, "Result:\n"))
	last := -1
	for _, s := range scenarios {
		header := fmt.Sprintf("Test %d (%s) Result:", s.Number, s.Description)
		idx := strings.Index(out, header)
		assert.Greater(idx, last, header)
		last = idx
	}
}

func TestRunAll(t *testing.T) {
	scenarios := build(2000, 200)

	var buf bytes.Buffer
	require.NoError(t, runAll(&buf, scenarios, Options{Runs: 2, Logger: zerolog.Nop()}))
	checkBlocks(t, buf.String(), scenarios)
}

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every scenario at full size")
	}

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, testOptions))
	checkBlocks(t, buf.String(), All())
}
