package deck

import (
	"fmt"
	"math"

	"github.com/vibelux/toolkit/pkg/canvas"
)

const (
	w = float64(Width)
	h = float64(Height)
)

// drawTitle paints the opening slide: logo disc, headline, tagline, and the
// four headline stats.
func drawTitle(c *canvas.Canvas) error {
	t := c.Theme

	c.Disc(w/2, 220, 70, t.Purple)
	c.Ring(w/2, 220, 86, t.PurpleLight, 4)
	if err := c.UseFont(42, true); err != nil {
		return err
	}
	c.TextCentered([]string{"V"}, w/2, 220, 0, t.Text)

	if err := c.UseFont(64, true); err != nil {
		return err
	}
	c.TextCentered([]string{"VibeLux Platform"}, w/2, 380, 0, t.Text)

	if err := c.UseFont(26, false); err != nil {
		return err
	}
	c.TextCentered([]string{"The Future of Controlled Environment Agriculture"}, w/2, 450, 0, t.TextMuted)

	stats := []struct {
		value, label string
	}{
		{"500+", "Features"},
		{"$0", "Upfront Cost"},
		{"30-50%", "Energy Savings"},
		{"80/20", "Revenue Share"},
	}

	const pillW, pillH, gap = 300.0, 130.0, 40.0
	total := pillW*float64(len(stats)) + gap*float64(len(stats)-1)
	x0 := (w - total) / 2
	y := 580.0

	for i, s := range stats {
		x := x0 + float64(i)*(pillW+gap)
		c.RoundedBox(x, y, pillW, pillH, 16, t.Surface, t.Purple, 2)

		if err := c.UseFont(34, true); err != nil {
			return err
		}
		c.TextCentered([]string{s.value}, x+pillW/2, y+48, 0, t.GreenLight)
		if err := c.UseFont(18, false); err != nil {
			return err
		}
		c.TextCentered([]string{s.label}, x+pillW/2, y+92, 0, t.TextMuted)
	}
	return nil
}

// drawCFD paints the 3D design and airflow analysis showcase.
func drawCFD(c *canvas.Canvas) error {
	t := c.Theme

	if err := slideHeader(c, "3D Design & CFD Analysis", "Design the room before you build it"); err != nil {
		return err
	}

	// Room cross-section with airflow arrows.
	roomX, roomY, roomW, roomH := 120.0, 240.0, 700.0, 440.0
	c.RoundedBox(roomX, roomY, roomW, roomH, 8, t.Surface, t.Blue, 3)

	// Canopy benches.
	for i := 0; i < 3; i++ {
		bx := roomX + 70 + float64(i)*220
		c.Box(bx, roomY+roomH-120, 160, 60, t.Green)
	}
	// Fixture row.
	for i := 0; i < 3; i++ {
		bx := roomX + 70 + float64(i)*220
		c.Box(bx, roomY+50, 160, 24, t.Yellow)
	}
	// Airflow field: arrows arcing from supply (left) to return (right).
	for i := 0; i < 4; i++ {
		y := roomY + 120 + float64(i)*70
		c.Arrow(roomX+40, y, roomX+roomW-40, y+20, t.Blue, 3)
	}

	if err := c.UseFont(16, false); err != nil {
		return err
	}
	c.TextCentered([]string{"Velocity field, 0.3-0.7 m/s across canopy"}, roomX+roomW/2, roomY+roomH+30, 0, t.TextMuted)

	features := []string{
		"Drag-and-drop room builder with real fixture models",
		"PPFD heat maps from photometric IES files",
		"CFD airflow and VPD uniformity analysis",
		"Microclimates flagged before they cost yield",
	}
	if err := featureColumn(c, features, 900, 280); err != nil {
		return err
	}
	return nil
}

// drawAIML paints the hub-and-spoke model inventory.
func drawAIML(c *canvas.Canvas) error {
	t := c.Theme

	if err := slideHeader(c, "AI & Machine Learning Core", "Every model feeds the optimization loop"); err != nil {
		return err
	}

	cx, cy := w/2, 520.0
	hubR := 95.0

	nodes := []string{
		"Yield\nPrediction",
		"Pest & Disease\nDetection",
		"Energy\nForecasting",
		"Spectrum\nOptimization",
		"Climate\nControl",
		"Anomaly\nDetection",
		"Market Price\nSignals",
		"Recipe\nTuning",
	}

	orbit := 280.0
	for i, label := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(len(nodes))
		nx := cx + orbit*math.Cos(angle)
		ny := cy + orbit*math.Sin(angle)*0.62 // squash to fit 16:9

		c.Arrow(nx, ny, cx+(hubR+14)*math.Cos(angle), cy+(hubR+14)*math.Sin(angle)*0.62, t.TextMuted, 2)
		c.Disc(nx, ny, 56, t.Surface)
		c.Ring(nx, ny, 56, t.Blue, 2)

		if err := c.UseFont(14, true); err != nil {
			return err
		}
		c.TextCentered(splitLines(label), nx, ny, 17, t.Text)
	}

	c.Disc(cx, cy, hubR, t.Purple)
	c.Ring(cx, cy, hubR+10, t.PurpleLight, 3)
	if err := c.UseFont(20, true); err != nil {
		return err
	}
	c.TextCentered([]string{"VibeLux", "AI Core"}, cx, cy, 26, t.Text)
	return nil
}

// drawEnergy paints the 24-hour rate/intensity chart and feature tiles.
func drawEnergy(c *canvas.Canvas) error {
	t := c.Theme

	if err := slideHeader(c, "Energy Optimization", "Follow the price curve without sacrificing DLI"); err != nil {
		return err
	}

	// 24-hour chart: electricity rate bars with the dimmed-intensity line.
	chartX, chartY, chartW, chartH := 120.0, 250.0, 760.0, 330.0
	c.RoundedBox(chartX-20, chartY-30, chartW+40, chartH+80, 8, t.Surface, t.SurfaceLight, 1)

	rates := hourlyRates()
	barW := chartW / 24
	for hr, rate := range rates {
		bh := rate / 0.40 * chartH
		col := t.Blue
		if rate >= 0.30 {
			col = t.Red
		} else if rate >= 0.18 {
			col = t.Amber
		}
		c.Box(chartX+float64(hr)*barW+2, chartY+chartH-bh, barW-4, bh, col)
	}

	// Light intensity line: full off-peak, dimmed through the peak.
	prevX, prevY := chartX, chartY+chartH*0.25
	for hr := 1; hr < 24; hr++ {
		intensity := 1.0
		if rates[hr] >= 0.30 {
			intensity = 0.85
		}
		x := chartX + (float64(hr)+0.5)*barW
		y := chartY + chartH*(1-intensity*0.75)
		c.Arrow(prevX, prevY, x, y, t.GreenLight, 3)
		prevX, prevY = x, y
	}

	if err := c.UseFont(15, false); err != nil {
		return err
	}
	c.TextCentered([]string{"Hour of day vs $/kWh - green line is light intensity"}, chartX+chartW/2, chartY+chartH+40, 0, t.TextMuted)

	features := []string{
		"Real-time utility rate ingestion",
		"Peak shaving with DLI compensation",
		"Demand response revenue capture",
		"Battery and thermal storage dispatch",
	}
	if err := featureColumn(c, features, 960, 290); err != nil {
		return err
	}

	// Savings banner.
	c.RoundedBox(120, 730, w-240, 90, 14, t.Green, t.GreenLight, 0)
	if err := c.UseFont(28, true); err != nil {
		return err
	}
	c.TextCentered([]string{"30-50% energy cost reduction, verified monthly"}, w/2, 775, 0, t.Background)
	return nil
}

// drawPlatform paints the eight feature-category tiles.
func drawPlatform(c *canvas.Canvas) error {
	t := c.Theme

	if err := slideHeader(c, "Complete Platform", "500+ features across the whole operation"); err != nil {
		return err
	}

	categories := []struct {
		name  string
		count int
	}{
		{"Cultivation Tools", 45},
		{"Energy Management", 78},
		{"Marketplace", 56},
		{"Analytics & Reports", 89},
		{"Automation", 67},
		{"Integrations", 92},
		{"Financial Tools", 34},
		{"Research Suite", 41},
	}

	const cols = 4
	tileW, tileH, gap := 330.0, 220.0, 30.0
	gridW := tileW*cols + gap*(cols-1)
	x0 := (w - gridW) / 2
	y0 := 260.0

	for i, cat := range categories {
		col, row := i%cols, i/cols
		x := x0 + float64(col)*(tileW+gap)
		y := y0 + float64(row)*(tileH+gap)

		c.RoundedBox(x, y, tileW, tileH, 14, t.Surface, t.Purple, 2)
		c.Disc(x+tileW/2, y+70, 38, t.Purple)

		if err := c.UseFont(22, true); err != nil {
			return err
		}
		c.TextCentered([]string{fmt.Sprintf("%d", cat.count)}, x+tileW/2, y+70, 0, t.Text)
		if err := c.UseFont(18, true); err != nil {
			return err
		}
		c.TextCentered([]string{cat.name}, x+tileW/2, y+150, 0, t.Text)
		if err := c.UseFont(14, false); err != nil {
			return err
		}
		c.TextCentered([]string{"features"}, x+tileW/2, y+180, 0, t.TextMuted)
	}
	return nil
}

// drawJourney paints the five-step onboarding path.
func drawJourney(c *canvas.Canvas) error {
	t := c.Theme

	if err := slideHeader(c, "Grower Journey", "From sign-up to shared savings in 90 days"); err != nil {
		return err
	}

	steps := []struct {
		title, detail string
	}{
		{"Sign Up", "Free platform account"},
		{"Energy Audit", "12 months of utility data"},
		{"Install", "$0 upfront equipment"},
		{"Optimize", "AI control goes live"},
		{"Share Savings", "80/20 verified split"},
	}

	cy := 500.0
	r := 70.0
	gap := (w - 240) / float64(len(steps)-1)

	for i, step := range steps {
		cx := 120 + float64(i)*gap

		if i > 0 {
			prev := 120 + float64(i-1)*gap
			c.Arrow(prev+r+10, cy, cx-r-10, cy, t.TextMuted, 4)
		}

		c.Disc(cx, cy, r, t.Purple)
		c.Ring(cx, cy, r+8, t.PurpleLight, 3)

		if err := c.UseFont(34, true); err != nil {
			return err
		}
		c.TextCentered([]string{fmt.Sprintf("%d", i+1)}, cx, cy, 0, t.Text)

		if err := c.UseFont(20, true); err != nil {
			return err
		}
		c.TextCentered([]string{step.title}, cx, cy+120, 0, t.Text)
		if err := c.UseFont(15, false); err != nil {
			return err
		}
		c.TextCentered([]string{step.detail}, cx, cy+150, 0, t.TextMuted)
	}
	return nil
}

// slideHeader draws the standard title and subtitle band.
func slideHeader(c *canvas.Canvas, title, subtitle string) error {
	t := c.Theme
	c.Box(0, 0, w, 8, t.Purple)

	if err := c.UseFont(44, true); err != nil {
		return err
	}
	c.TextCentered([]string{title}, w/2, 110, 0, t.Text)

	if err := c.UseFont(20, false); err != nil {
		return err
	}
	c.TextCentered([]string{subtitle}, w/2, 160, 0, t.TextMuted)
	return nil
}

// featureColumn draws checkmarked feature rows starting at (x, y).
func featureColumn(c *canvas.Canvas, features []string, x, y float64) error {
	t := c.Theme
	for i, f := range features {
		ry := y + float64(i)*90
		c.RoundedBox(x, ry, 560, 70, 10, t.Surface, t.SurfaceLight, 1)
		c.Disc(x+36, ry+35, 14, t.Green)

		if err := c.UseFont(17, false); err != nil {
			return err
		}
		c.TextLeft(f, x+66, ry+35, t.Text)
	}
	return nil
}

// hourlyRates is the illustrative TOU price curve used by the energy slide:
// cheap overnight, shoulder mornings, a 2-7 PM peak.
func hourlyRates() [24]float64 {
	rates := [24]float64{}
	for hr := range rates {
		switch {
		case hr >= 14 && hr < 19:
			rates[hr] = 0.38
		case hr >= 7 && hr < 14 || hr >= 19 && hr < 22:
			rates[hr] = 0.22
		default:
			rates[hr] = 0.12
		}
	}
	return rates
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
