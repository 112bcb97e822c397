package charts

// DefaultHighlightThreshold is the percent change beyond which a point or
// bar is marked as a spike or drop.
const DefaultHighlightThreshold = 20.0

type Highlight string

const (
	HighlightNone  Highlight = ""
	HighlightSpike Highlight = "spike"
	HighlightDrop  Highlight = "drop"
)

// SourceType signals provenance of the underlying data; it only picks the
// base color.
type SourceType string

const (
	SourceDocument SourceType = "document"
	SourceDatabase SourceType = "database"
)

const (
	colorDocument = "#6366f1"
	colorDatabase = "#0ea5e9"
	colorSpike    = "#22c55e"
	colorDrop     = "#ef4444"
)

type LinePoint struct {
	X         string    `json:"x"`
	Y         float64   `json:"y"`
	ChangePct float64   `json:"change_pct"`
	Highlight Highlight `json:"highlight,omitempty"`
}

type LineChart struct {
	Type      Type        `json:"type"`
	Source    SourceType  `json:"source"`
	BaseColor string      `json:"base_color"`
	Points    []LinePoint `json:"points"`
}

// BuildLine computes per-point percent change against the previous point and
// marks spikes and drops beyond the threshold. A pair whose previous y is
// zero is skipped rather than divided.
func BuildLine(data []DataPoint, xKey, yKey string, source SourceType, threshold float64) LineChart {
	if threshold <= 0 {
		threshold = DefaultHighlightThreshold
	}

	chart := LineChart{
		Type:      TypeLine,
		Source:    source,
		BaseColor: baseColor(source),
		Points:    make([]LinePoint, 0, len(data)),
	}

	var prevY float64
	for i, record := range data {
		y, _ := toNumber(record[yKey])
		point := LinePoint{X: stringify(record[xKey]), Y: y}
		if i > 0 && prevY != 0 {
			change := (y - prevY) / prevY * 100
			point.ChangePct = change
			if change > threshold {
				point.Highlight = HighlightSpike
			} else if change < -threshold {
				point.Highlight = HighlightDrop
			}
		}
		chart.Points = append(chart.Points, point)
		prevY = y
	}
	return chart
}

type Bar struct {
	X            string    `json:"x"`
	Y            float64   `json:"y"`
	DeviationPct float64   `json:"deviation_pct"`
	Highlight    Highlight `json:"highlight,omitempty"`
	Color        string    `json:"color"`
}

type BarChart struct {
	Type      Type       `json:"type"`
	Source    SourceType `json:"source"`
	BaseColor string     `json:"base_color"`
	Mean      float64    `json:"mean"`
	Bars      []Bar      `json:"bars"`
}

// BuildBar colors each bar by its percent deviation from the mean of all
// y-values, with the same threshold semantics as the line highlights.
func BuildBar(data []DataPoint, xKey, yKey string, source SourceType, threshold float64) BarChart {
	if threshold <= 0 {
		threshold = DefaultHighlightThreshold
	}

	chart := BarChart{
		Type:      TypeBar,
		Source:    source,
		BaseColor: baseColor(source),
		Bars:      make([]Bar, 0, len(data)),
	}

	var sum float64
	values := make([]float64, len(data))
	for i, record := range data {
		y, _ := toNumber(record[yKey])
		values[i] = y
		sum += y
	}
	if len(data) > 0 {
		chart.Mean = sum / float64(len(data))
	}

	for i, record := range data {
		bar := Bar{X: stringify(record[xKey]), Y: values[i], Color: chart.BaseColor}
		if chart.Mean != 0 {
			deviation := (values[i] - chart.Mean) / chart.Mean * 100
			bar.DeviationPct = deviation
			if deviation > threshold {
				bar.Highlight = HighlightSpike
				bar.Color = colorSpike
			} else if deviation < -threshold {
				bar.Highlight = HighlightDrop
				bar.Color = colorDrop
			}
		}
		chart.Bars = append(chart.Bars, bar)
	}
	return chart
}

// Build selects the chart type for the data and renders the matching model.
func Build(data []DataPoint, xKey, yKey string, source SourceType, force Type) interface{} {
	if Select(data, xKey, yKey, force) == TypeLine {
		return BuildLine(data, xKey, yKey, source, DefaultHighlightThreshold)
	}
	return BuildBar(data, xKey, yKey, source, DefaultHighlightThreshold)
}

func baseColor(source SourceType) string {
	if source == SourceDatabase {
		return colorDatabase
	}
	return colorDocument
}
