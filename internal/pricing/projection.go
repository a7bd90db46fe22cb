package pricing

// Fixed linear multipliers applied to the trailing monthly earnings figure
const (
	WeeksPerMonth     = 4
	MonthsPerSemester = 4
)

type Projection struct {
	Monthly  float64
	Weekly   float64
	Semester float64
}

// Project derives weekly and semester figures from monthly earnings. These
// are straight multiples with no smoothing.
func Project(monthly float64) Projection {
	return Projection{
		Monthly:  monthly,
		Weekly:   monthly / WeeksPerMonth,
		Semester: monthly * MonthsPerSemester,
	}
}

// ChartPoint is one bar of the earnings trend chart
type ChartPoint struct {
	Label     string
	Earnings  float64
	Projected bool
}

var chartFactors = []struct {
	label     string
	factor    float64
	projected bool
}{
	{"Jan", 0.7, false},
	{"Feb", 0.85, false},
	{"Mar", 0.95, false},
	{"Apr", 1.0, false},
	{"May", 1.1, true},
	{"Jun", 1.15, true},
}

// ChartSeries scales the monthly figure by the fixed illustrative factors of
// the earnings trend chart; the last two points are marked projected.
func ChartSeries(monthly float64) []ChartPoint {
	points := make([]ChartPoint, 0, len(chartFactors))
	for _, f := range chartFactors {
		points = append(points, ChartPoint{
			Label:     f.label,
			Earnings:  monthly * f.factor,
			Projected: f.projected,
		})
	}
	return points
}
