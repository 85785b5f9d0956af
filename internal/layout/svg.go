package layout

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// Title is drawn above the diagram.
const Title = "Auto-generated Floorplan (Diagrammatic Only)"

// pixelsPerFoot scales plan units to SVG user units.
const pixelsPerFoot = 20.0

// titleBand is the space reserved above the plan for the title.
const titleBand = 30.0

// SVG renders the plan as a standalone SVG document. SVG's y axis already
// points down, so rooms appear top-down in input order.
func (p *Plan) SVG() string {
	width := p.Width * pixelsPerFoot
	height := p.Height*pixelsPerFoot + titleBand

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf(`  <text x="%s" y="20" text-anchor="middle" font-size="14">%s</text>`,
		formatFloat(width/2), html.EscapeString(Title)))
	b.WriteString("\n")

	for _, pl := range p.Placements {
		b.WriteString("  ")
		b.WriteString(renderPlacement(pl))
		b.WriteString("\n")
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func renderPlacement(pl Placement) string {
	x := pl.X * pixelsPerFoot
	y := pl.Y*pixelsPerFoot + titleBand
	w := pl.Width * pixelsPerFoot
	h := pl.Height * pixelsPerFoot

	return fmt.Sprintf(`<g><rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="black"/>`+
		`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="9">%s</text></g>`,
		formatFloat(x), formatFloat(y), formatFloat(w), formatFloat(h),
		formatFloat(x+w/2), formatFloat(y+h/2), html.EscapeString(pl.Label))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
