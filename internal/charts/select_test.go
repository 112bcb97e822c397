package charts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func categoricalRows(n int) []DataPoint {
	rows := make([]DataPoint, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, DataPoint{"x": fmt.Sprintf("bucket-%c", 'z'-i%26), "y": i})
	}
	return rows
}

func TestSelectEmptyDefaultsToBar(t *testing.T) {
	assert.Equal(t, TypeBar, Select(nil, "x", "y", ""))
	assert.Equal(t, TypeBar, Select([]DataPoint{}, "x", "y", ""))
}

func TestSelectForcedTypeWins(t *testing.T) {
	timeline := []DataPoint{
		{"x": "2024-01-01", "y": 1},
		{"x": "2024-01-02", "y": 2},
	}
	assert.Equal(t, TypeBar, Select(timeline, "x", "y", TypeBar))
	assert.Equal(t, TypeLine, Select(categoricalRows(3), "x", "y", TypeLine))
}

func TestSelectTimelineShapes(t *testing.T) {
	cases := []string{
		"2024-01-01",
		"2024/06/30 extra",
		"Jan 2024",
		"september",
		"14:30",
		"9:05",
		"Monday",
		"tue",
		"Week 12",
		"Q3",
	}
	for _, x := range cases {
		data := []DataPoint{{"x": x, "y": 1}}
		assert.Equal(t, TypeLine, Select(data, "x", "y", ""), "x=%q", x)
	}
}

func TestSelectSingleTimestampedPoint(t *testing.T) {
	data := []DataPoint{{"x": "2024-03-15", "y": 42}}
	assert.Equal(t, TypeLine, Select(data, "x", "y", ""))
}

func TestSelectSparseCategorical(t *testing.T) {
	data := []DataPoint{
		{"x": "billing", "y": 3},
		{"x": "growth", "y": 7},
		{"x": "support", "y": 2},
		{"x": "product", "y": 9},
		{"x": "legal", "y": 1},
	}
	assert.Equal(t, TypeBar, Select(data, "x", "y", ""))
}

func TestSelectDenseData(t *testing.T) {
	assert.Equal(t, TypeBar, Select(categoricalRows(20), "x", "y", ""))
	assert.Equal(t, TypeLine, Select(categoricalRows(21), "x", "y", ""))
}

func TestSelectStrictlyIncreasingNumericX(t *testing.T) {
	increasing := make([]DataPoint, 0, 10)
	for i := 0; i < 10; i++ {
		increasing = append(increasing, DataPoint{"x": i * 3, "y": i})
	}
	assert.Equal(t, TypeLine, Select(increasing, "x", "y", ""))

	// Same count, but one repeated x breaks strict monotonicity.
	flat := append([]DataPoint{}, increasing...)
	flat[4] = DataPoint{"x": flat[3]["x"], "y": 4}
	assert.Equal(t, TypeBar, Select(flat, "x", "y", ""))
}

func TestSelectMidSizeCategoricalDefaultsToBar(t *testing.T) {
	assert.Equal(t, TypeBar, Select(categoricalRows(10), "x", "y", ""))
}

func TestSelectNumericStringsParse(t *testing.T) {
	data := []DataPoint{
		{"x": "1", "y": 1}, {"x": "2", "y": 2}, {"x": "3", "y": 3},
		{"x": "4", "y": 4}, {"x": "5", "y": 5}, {"x": "6", "y": 6},
		{"x": "7", "y": 7},
	}
	assert.Equal(t, TypeLine, Select(data, "x", "y", ""))
}

func TestSelectIsDeterministic(t *testing.T) {
	data := categoricalRows(8)
	first := Select(data, "x", "y", "")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Select(data, "x", "y", ""))
	}
}
