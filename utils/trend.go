package utils

// Point is one (x, y) sample of a time-ordered numeric series. X is usually
// a unix-millis timestamp, Y a mass or calorie value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OneDayMillis is the natural step for calendar-day-sampled series.
const OneDayMillis = 24 * 60 * 60 * 1000

// FitLine fits an ordinary-least-squares line to the points. ok is false
// when fewer than 2 points are given or all x values coincide (zero
// variance), in which case no trend is computable.
func FitLine(points []Point) (slope, intercept float64, ok bool) {
	if len(points) < 2 {
		return 0, 0, false
	}

	n := float64(len(points))
	var xMean, yMean float64
	for _, p := range points {
		xMean += p.X
		yMean += p.Y
	}
	xMean /= n
	yMean /= n

	var num, den float64
	for _, p := range points {
		num += (p.X - xMean) * (p.Y - yMean)
		den += (p.X - xMean) * (p.X - xMean)
	}
	if den == 0 {
		return 0, 0, false
	}

	slope = num / den
	intercept = yMean - slope*xMean
	return slope, intercept, true
}

// Project extrapolates the fitted line horizon steps past the last sample,
// one point per step of the given spacing. Degenerate input yields an empty
// projection, never NaN.
func Project(points []Point, horizon int, step float64) []Point {
	slope, intercept, ok := FitLine(points)
	if !ok || horizon <= 0 {
		return nil
	}

	lastX := points[0].X
	for _, p := range points {
		if p.X > lastX {
			lastX = p.X
		}
	}

	out := make([]Point, 0, horizon)
	for k := 1; k <= horizon; k++ {
		x := lastX + float64(k)*step
		out = append(out, Point{X: x, Y: slope*x + intercept})
	}
	return out
}

// TrendSeries returns the fitted line sampled at one-day spacing across the
// observed range and daysAhead days beyond it, for charting irregularly
// sampled data against real calendar gaps.
func TrendSeries(points []Point, daysAhead int) []Point {
	slope, intercept, ok := FitLine(points)
	if !ok {
		return nil
	}

	firstX, lastX := points[0].X, points[0].X
	for _, p := range points {
		if p.X < firstX {
			firstX = p.X
		}
		if p.X > lastX {
			lastX = p.X
		}
	}
	end := lastX + float64(daysAhead)*OneDayMillis

	var out []Point
	for x := firstX; x <= end; x += OneDayMillis {
		out = append(out, Point{X: x, Y: slope*x + intercept})
	}
	return out
}
