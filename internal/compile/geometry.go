package compile

import (
	"strconv"
	"strings"

	"montage/internal/timeline"
)

// GeometryContext names the engine variables available while resolving a
// position. Text drawing and overlay compositing expose different variable
// sets for the same concepts; mixing them up is a silent correctness bug, so
// the context is always passed explicitly.
type GeometryContext struct {
	CanvasW  string
	CanvasH  string
	ElementW string
	ElementH string
}

var (
	// TextContext is the drawtext coordinate namespace.
	TextContext = GeometryContext{CanvasW: "w", CanvasH: "h", ElementW: "text_w", ElementH: "text_h"}

	// OverlayContext is the overlay-filter coordinate namespace.
	OverlayContext = GeometryContext{CanvasW: "main_w", CanvasH: "main_h", ElementW: "overlay_w", ElementH: "overlay_h"}
)

const edgePad = 10

// ResolvePosition turns a symbolic position into a pair of ready-to-splice
// coordinate expressions. Nothing is evaluated numerically here; the engine
// resolves the expressions against actual frame and element sizes at run
// time. An unconfigured position centers the element.
func ResolvePosition(pos timeline.Position, ctx GeometryContext) (x, y string) {
	if pos.Preset != "" {
		return presetExpressions(pos.Preset, ctx)
	}
	if pos.IsZero() {
		return presetExpressions("center", ctx)
	}
	x = resolveCoordinate(pos.X, ctx.CanvasW)
	y = resolveCoordinate(pos.Y, ctx.CanvasH)
	dx, dy := anchorAdjust(pos.Anchor, ctx)
	return x + dx, y + dy
}

func presetExpressions(preset string, ctx GeometryContext) (string, string) {
	centerX := "(" + ctx.CanvasW + "-" + ctx.ElementW + ")/2"
	centerY := "(" + ctx.CanvasH + "-" + ctx.ElementH + ")/2"
	nearX := strconv.Itoa(edgePad)
	nearY := strconv.Itoa(edgePad)
	farX := ctx.CanvasW + "-" + ctx.ElementW + "-" + strconv.Itoa(edgePad)
	farY := ctx.CanvasH + "-" + ctx.ElementH + "-" + strconv.Itoa(edgePad)

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "top":
		return centerX, nearY
	case "bottom":
		return centerX, farY
	case "top-left":
		return nearX, nearY
	case "top-right":
		return farX, nearY
	case "bottom-left":
		return nearX, farY
	case "bottom-right":
		return farX, farY
	default:
		return centerX, centerY
	}
}

// resolveCoordinate maps one coordinate value into an expression against the
// given canvas dimension variable. Percentages become a scaled dimension,
// pixel suffixes are stripped, and anything unrecognized passes through
// verbatim as a raw engine expression.
func resolveCoordinate(c timeline.Coord, canvasVar string) string {
	value := strings.TrimSpace(c.String())
	if value == "" {
		return "0"
	}
	if strings.HasSuffix(value, "%") {
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64); err == nil {
			return "(" + canvasVar + "*" + formatFloat(pct/100) + ")"
		}
		return value
	}
	if strings.HasSuffix(value, "px") {
		trimmed := strings.TrimSuffix(value, "px")
		if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return trimmed
		}
	}
	return value
}

// anchorAdjust returns the additive correction terms for the nine-point
// anchor table. The default anchor is the element's top-left corner, so
// center and far anchors subtract half or all of the element's own size.
func anchorAdjust(anchor string, ctx GeometryContext) (dx, dy string) {
	switch strings.ToLower(strings.TrimSpace(anchor)) {
	case "top":
		return "-(" + ctx.ElementW + "/2)", ""
	case "top-right":
		return "-(" + ctx.ElementW + ")", ""
	case "left":
		return "", "-(" + ctx.ElementH + "/2)"
	case "center":
		return "-(" + ctx.ElementW + "/2)", "-(" + ctx.ElementH + "/2)"
	case "right":
		return "-(" + ctx.ElementW + ")", "-(" + ctx.ElementH + "/2)"
	case "bottom-left":
		return "", "-(" + ctx.ElementH + ")"
	case "bottom":
		return "-(" + ctx.ElementW + "/2)", "-(" + ctx.ElementH + ")"
	case "bottom-right":
		return "-(" + ctx.ElementW + ")", "-(" + ctx.ElementH + ")"
	default:
		return "", ""
	}
}

// formatFloat renders a float in its shortest exact decimal form so that
// compiled commands are stable across runs.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
