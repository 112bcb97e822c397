package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineHighlights(t *testing.T) {
	data := []DataPoint{
		{"x": "2024-01-01", "y": 100},
		{"x": "2024-01-02", "y": 130},
		{"x": "2024-01-03", "y": 120},
		{"x": "2024-01-04", "y": 50},
	}

	chart := BuildLine(data, "x", "y", SourceDatabase, 20)
	require.Len(t, chart.Points, 4)

	assert.Equal(t, HighlightNone, chart.Points[0].Highlight)
	assert.Equal(t, HighlightSpike, chart.Points[1].Highlight)
	assert.InDelta(t, 30.0, chart.Points[1].ChangePct, 0.01)
	assert.Equal(t, HighlightNone, chart.Points[2].Highlight)
	assert.Equal(t, HighlightDrop, chart.Points[3].Highlight)
	assert.Equal(t, colorDatabase, chart.BaseColor)
}

func TestBuildLineSkipsZeroPrevious(t *testing.T) {
	data := []DataPoint{
		{"x": "1", "y": 0},
		{"x": "2", "y": 500},
	}
	chart := BuildLine(data, "x", "y", SourceDocument, 20)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, HighlightNone, chart.Points[1].Highlight)
	assert.Zero(t, chart.Points[1].ChangePct)
}

func TestBuildLineDefaultThreshold(t *testing.T) {
	data := []DataPoint{
		{"x": "1", "y": 100},
		{"x": "2", "y": 119},
		{"x": "3", "y": 150},
	}
	chart := BuildLine(data, "x", "y", SourceDocument, 0)
	assert.Equal(t, HighlightNone, chart.Points[1].Highlight)
	assert.Equal(t, HighlightSpike, chart.Points[2].Highlight)
}

func TestBuildLineIdempotent(t *testing.T) {
	data := []DataPoint{
		{"x": "Mon", "y": 10},
		{"x": "Tue", "y": 30},
		{"x": "Wed", "y": 5},
	}
	first := BuildLine(data, "x", "y", SourceDocument, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildLine(data, "x", "y", SourceDocument, 20))
	}
}

func TestBuildBarDeviationColors(t *testing.T) {
	data := []DataPoint{
		{"x": "a", "y": 10},
		{"x": "b", "y": 10},
		{"x": "c", "y": 40},
	}

	chart := BuildBar(data, "x", "y", SourceDocument, 20)
	require.Len(t, chart.Bars, 3)
	assert.InDelta(t, 20.0, chart.Mean, 0.01)

	assert.Equal(t, HighlightDrop, chart.Bars[0].Highlight)
	assert.Equal(t, colorDrop, chart.Bars[0].Color)
	assert.Equal(t, HighlightDrop, chart.Bars[1].Highlight)
	assert.Equal(t, HighlightSpike, chart.Bars[2].Highlight)
	assert.Equal(t, colorSpike, chart.Bars[2].Color)
}

func TestBuildBarZeroMeanGuard(t *testing.T) {
	data := []DataPoint{
		{"x": "a", "y": -5},
		{"x": "b", "y": 5},
	}
	chart := BuildBar(data, "x", "y", SourceDatabase, 20)
	for _, bar := range chart.Bars {
		assert.Equal(t, HighlightNone, bar.Highlight)
		assert.Equal(t, colorDatabase, bar.Color)
	}
}

func TestBuildPicksRendererFromSelection(t *testing.T) {
	timeline := []DataPoint{
		{"x": "2024-01-01", "y": 1},
		{"x": "2024-01-02", "y": 2},
	}
	line, ok := Build(timeline, "x", "y", SourceDatabase, "").(LineChart)
	require.True(t, ok)
	assert.Equal(t, TypeLine, line.Type)

	bar, ok := Build(categoricalRows(3), "x", "y", SourceDocument, "").(BarChart)
	require.True(t, ok)
	assert.Equal(t, TypeBar, bar.Type)
}
