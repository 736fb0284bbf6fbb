// Package flow builds the layered energy-optimization and revenue-sharing
// flow diagrams. A diagram is rows of boxes with arrows between them; the
// renderer centers each row and routes the arrows.
package flow

import (
	"image/color"

	"github.com/vibelux/toolkit/pkg/brand"
)

// Box is a single node in a layer. Lines render centered inside the box.
type Box struct {
	Lines []string
	Color color.RGBA
}

// Layer is one horizontal row of boxes with an optional row label.
type Layer struct {
	Label string
	Boxes []Box
}

// Ref addresses a box by layer and position.
type Ref struct {
	Layer, Box int
}

// Link is an arrow between two boxes. Boxes in the same layer connect
// horizontally; boxes in different layers connect vertically.
type Link struct {
	From, To Ref
}

// Diagram is a complete flow chart.
type Diagram struct {
	Title    string
	Subtitle string
	Layers   []Layer
	Links    []Link
	// Note renders as a highlighted panel under the layers (worked
	// scenario, qualification criteria).
	Note []string
}

// Energy returns the energy optimization flow: market and facility inputs
// feeding the optimization engine, through the safety rules engine, into
// control execution and measured results.
func Energy() *Diagram {
	t := brand.Dark()
	input := t.Blue
	algo := t.Purple
	rules := t.Amber
	exec := t.Green
	result := t.GreenLight

	d := &Diagram{
		Title:    "VibeLux Energy Optimization",
		Subtitle: "How real-time signals become verified savings",
		Layers: []Layer{
			{Label: "Inputs", Boxes: []Box{
				{Lines: []string{"Electricity", "Pricing"}, Color: input},
				{Lines: []string{"Weather", "Forecast"}, Color: input},
				{Lines: []string{"Crop", "Requirements"}, Color: input},
				{Lines: []string{"Grid Demand", "Signals"}, Color: input},
			}},
			{Label: "Optimization", Boxes: []Box{
				{Lines: []string{"Smart Lighting", "Schedule Optimizer"}, Color: algo},
				{Lines: []string{"HVAC & Climate", "Load Shifter"}, Color: algo},
			}},
			{Label: "Safety", Boxes: []Box{
				{Lines: []string{"Cultivation Rules Engine", "DLI targets · photoperiod locks · VPD bounds"}, Color: rules},
			}},
			{Label: "Execution", Boxes: []Box{
				{Lines: []string{"Dim Lights", "(peak hours)"}, Color: exec},
				{Lines: []string{"Shift HVAC", "Load"}, Color: exec},
				{Lines: []string{"Discharge", "Battery"}, Color: exec},
			}},
			{Label: "Results", Boxes: []Box{
				{Lines: []string{"30-50%", "Energy Savings"}, Color: result},
				{Lines: []string{"Crop Yield", "Protected"}, Color: result},
				{Lines: []string{"Grid Revenue", "Captured"}, Color: result},
			}},
		},
		Note: []string{
			"Example: 2:47 PM peak pricing at $0.38/kWh.",
			"Lights dim 15% for 3 hours, DLI stays on target by extending the off-peak photoperiod.",
			"Result: $156 saved today on one flower room with zero yield impact.",
		},
	}

	// Inputs fan into both optimizers.
	for i := 0; i < 4; i++ {
		d.Links = append(d.Links,
			Link{From: Ref{0, i}, To: Ref{1, 0}},
			Link{From: Ref{0, i}, To: Ref{1, 1}},
		)
	}
	// Optimizers pass through the rules engine.
	d.Links = append(d.Links,
		Link{From: Ref{1, 0}, To: Ref{2, 0}},
		Link{From: Ref{1, 1}, To: Ref{2, 0}},
	)
	// Rules engine drives every execution path.
	for i := 0; i < 3; i++ {
		d.Links = append(d.Links, Link{From: Ref{2, 0}, To: Ref{3, i}})
	}
	// Execution maps to results.
	for i := 0; i < 3; i++ {
		d.Links = append(d.Links, Link{From: Ref{3, i}, To: Ref{4, i}})
	}

	return d
}

// Revenue returns the revenue sharing flow: the four-step grower journey,
// the 80/20 split of verified savings, and the program benefits.
func Revenue() *Diagram {
	t := brand.Dark()

	d := &Diagram{
		Title:    "VibeLux Revenue Sharing",
		Subtitle: "$0 upfront equipment, paid from verified savings",
		Layers: []Layer{
			{Label: "Journey", Boxes: []Box{
				{Lines: []string{"1. Qualify", "Facility audit"}, Color: t.Blue},
				{Lines: []string{"2. Install", "$0 upfront"}, Color: t.Purple},
				{Lines: []string{"3. Optimize", "AI-driven control"}, Color: t.Amber},
				{Lines: []string{"4. Share", "Verified savings"}, Color: t.Green},
			}},
			{Label: "Monthly Savings", Boxes: []Box{
				{Lines: []string{"$15,000", "verified savings"}, Color: t.GreenLight},
			}},
			{Label: "80/20 Split", Boxes: []Box{
				{Lines: []string{"Grower keeps 80%", "$12,000 / month"}, Color: t.Green},
				{Lines: []string{"VibeLux earns 20%", "$3,000 / month"}, Color: t.Purple},
			}},
			{Label: "Benefits", Boxes: []Box{
				{Lines: []string{"No capital", "outlay"}, Color: t.Blue},
				{Lines: []string{"No performance,", "no payment"}, Color: t.Blue},
				{Lines: []string{"Equipment", "ownership path"}, Color: t.Blue},
			}},
		},
		Links: []Link{
			// Journey steps run left to right.
			{From: Ref{0, 0}, To: Ref{0, 1}},
			{From: Ref{0, 1}, To: Ref{0, 2}},
			{From: Ref{0, 2}, To: Ref{0, 3}},
			// Savings flow down into the split.
			{From: Ref{0, 3}, To: Ref{1, 0}},
			{From: Ref{1, 0}, To: Ref{2, 0}},
			{From: Ref{1, 0}, To: Ref{2, 1}},
		},
		Note: []string{
			"Qualification: 10,000+ sq ft of canopy, 12+ months of utility history,",
			"and a facility energy audit confirming at least 25% savings headroom.",
		},
	}
	return d
}
