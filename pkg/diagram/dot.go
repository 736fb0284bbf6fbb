package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/vibelux/toolkit/pkg/errors"
	"github.com/vibelux/toolkit/pkg/render"
)

// ToDOT converts a model to Graphviz DOT. Groups become clusters; member
// nodes share the group's fill color.
func ToDOT(m *Model) string {
	var buf bytes.Buffer
	buf.WriteString("digraph vibelux {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", m.Title)
	buf.WriteString("  labelloc=\"t\";\n")
	buf.WriteString("  fontsize=28;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontcolor=white, fontsize=14, margin=\"0.25,0.15\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")

	byGroup := make(map[string][]Component)
	for _, c := range m.Components {
		byGroup[c.Group] = append(byGroup[c.Group], c)
	}

	for _, g := range m.Groups {
		members := byGroup[g.ID]
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\n  subgraph cluster_%s {\n", g.ID)
		fmt.Fprintf(&buf, "    label=%q;\n", g.Label)
		buf.WriteString("    fontsize=18;\n")
		buf.WriteString("    style=\"rounded\";\n")
		fmt.Fprintf(&buf, "    color=%q;\n", g.Color)
		for _, c := range members {
			fmt.Fprintf(&buf, "    %q [label=%q, fillcolor=%q];\n", c.ID, c.Label, g.Color)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, l := range m.Links {
		attrs := ""
		if l.Label != "" {
			attrs = fmt.Sprintf(" [label=%q, fontsize=12", l.Label)
		}
		if l.Dashed {
			if attrs == "" {
				attrs = " [style=dashed"
			} else {
				attrs += ", style=dashed"
			}
		}
		if attrs != "" {
			attrs += "]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", l.From, l.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render SVG")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders DOT to PNG via SVG conversion. A scale of 2.0 produces
// a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element so the viewBox origin is
// (0,0) and explicit pixel dimensions are present. Some SVG consumers
// mis-handle the offset viewBox Graphviz emits.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
