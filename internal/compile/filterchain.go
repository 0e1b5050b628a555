package compile

import (
	"strconv"
	"strings"

	"montage/internal/timeline"
)

const (
	defaultFontSize       = 24
	defaultFontColor      = "white"
	defaultOverlaySeconds = 5
)

// escapeText prepares text content for a single-quoted drawtext value.
// Backslashes are doubled and embedded single quotes use the close-escape-
// reopen form the engine's filter parser expects. Quotes are never a reason
// to reject content.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `'\''`)
	return s
}

// quoteExpr wraps a coordinate expression in single quotes when it contains
// characters that would otherwise terminate the filter argument.
func quoteExpr(expr string) string {
	if strings.Contains(expr, ",") && !strings.Contains(expr, "'") {
		return "'" + expr + "'"
	}
	return expr
}

func enableBetween(start, duration float64) string {
	return "enable='between(t," + formatFloat(start) + "," + formatFloat(start+duration) + ")'"
}

// overlayWindow returns the effective display window of an overlay layer:
// its explicit duration, or the shared five second default.
func overlayWindow(l timeline.Layer) (start, duration float64) {
	duration = l.Duration()
	if duration <= 0 {
		duration = defaultOverlaySeconds
	}
	return l.Start(), duration
}

// textBody builds the drawtext argument list for one text layer, without
// stream labels. Argument order is fixed so identical layers always render
// identical fragments.
func textBody(l timeline.Layer) string {
	opts := l.Text
	if opts == nil {
		opts = &timeline.TextOptions{}
	}
	x, y := ResolvePosition(opts.Position, TextContext)

	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	fontColor := opts.FontColor
	if fontColor == "" {
		fontColor = defaultFontColor
	}

	parts := []string{
		"text='" + escapeText(l.Content) + "'",
		"x=" + quoteExpr(x),
		"y=" + quoteExpr(y),
		"fontsize=" + strconv.Itoa(fontSize),
		"fontcolor=" + fontColor,
	}
	if opts.FontFile != "" {
		parts = append(parts, "fontfile='"+opts.FontFile+"'")
	}
	if family := fontSpec(opts); family != "" {
		parts = append(parts, "font='"+family+"'")
	}
	if opts.BoxColor != "" {
		parts = append(parts, "box=1", "boxcolor="+opts.BoxColor)
		if opts.BoxBorder > 0 {
			parts = append(parts, "boxborderw="+strconv.Itoa(opts.BoxBorder))
		}
	}
	if opts.BorderColor != "" {
		width := opts.BorderWidth
		if width <= 0 {
			width = 1
		}
		parts = append(parts, "bordercolor="+opts.BorderColor, "borderw="+strconv.Itoa(width))
	}
	if opts.ShadowColor != "" {
		sx, sy := opts.ShadowX, opts.ShadowY
		if sx == 0 && sy == 0 {
			sx, sy = 2, 2
		}
		parts = append(parts,
			"shadowcolor="+opts.ShadowColor,
			"shadowx="+strconv.Itoa(sx),
			"shadowy="+strconv.Itoa(sy))
	}
	if opts.LineSpacing != 0 {
		parts = append(parts, "line_spacing="+formatFloat(opts.LineSpacing))
	}
	if opts.Alignment != "" {
		parts = append(parts, "text_align="+opts.Alignment)
	}

	start, duration := overlayWindow(l)
	parts = append(parts, enableBetween(start, duration))
	return "drawtext=" + strings.Join(parts, ":")
}

// fontSpec renders the fontconfig family selector. Italic without an
// explicit family falls back to the default sans face.
func fontSpec(opts *timeline.TextOptions) string {
	if opts.FontFamily == "" && !opts.Italic {
		return ""
	}
	family := opts.FontFamily
	if family == "" {
		family = "Sans"
	}
	if opts.Italic {
		return family + ":style=Italic"
	}
	return family
}

// overlayBody builds the overlay argument list for one image layer, without
// stream labels.
func overlayBody(l timeline.Layer) string {
	var pos timeline.Position
	if l.Image != nil {
		pos = l.Image.Position
	}
	x, y := ResolvePosition(pos, OverlayContext)
	start, duration := overlayWindow(l)
	return "overlay=x=" + quoteExpr(x) + ":y=" + quoteExpr(y) + ":" + enableBetween(start, duration)
}

// filterKind is the closed set of generic filters with dedicated parameter
// templates. Names outside the set compile as filterPassthrough and reach
// the engine verbatim; unknown filters are a forward-compatibility escape
// hatch, not an error.
type filterKind int

const (
	filterPassthrough filterKind = iota
	filterBlur
	filterBrightness
	filterContrast
	filterSaturation
	filterZoompan
	filterColorMixer
	filterVignette
)

func classifyFilter(name string) filterKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blur", "boxblur":
		return filterBlur
	case "brightness":
		return filterBrightness
	case "contrast":
		return filterContrast
	case "saturation":
		return filterSaturation
	case "zoompan":
		return filterZoompan
	case "colorchannelmixer":
		return filterColorMixer
	case "vignette":
		return filterVignette
	default:
		return filterPassthrough
	}
}

const (
	defaultBlurRadius = 5.0
	defaultBrightness = 0.1
	defaultContrast   = 1.2
	defaultSaturation = 1.5
)

// genericBody builds the argument list for one generic filter layer.
func genericBody(l timeline.Layer, global timeline.GlobalOptions) string {
	opts := l.Filter
	if opts == nil {
		opts = &timeline.FilterOptions{}
	}
	switch classifyFilter(l.Content) {
	case filterBlur:
		radius := opts.Radius
		if radius <= 0 {
			radius = defaultBlurRadius
		}
		return "boxblur=" + formatFloat(radius)
	case filterBrightness:
		return "eq=brightness=" + formatFloat(valueOr(opts.Value, defaultBrightness))
	case filterContrast:
		return "eq=contrast=" + formatFloat(valueOr(opts.Value, defaultContrast))
	case filterSaturation:
		return "eq=saturation=" + formatFloat(valueOr(opts.Value, defaultSaturation))
	case filterZoompan:
		return zoompanBody(opts, l.Duration(), global)
	case filterColorMixer:
		return colorMixerBody(opts)
	case filterVignette:
		if opts.Angle != "" {
			return "vignette=angle=" + opts.Angle
		}
		return "vignette"
	default:
		if opts.Params != "" {
			return l.Content + "=" + opts.Params
		}
		return l.Content
	}
}

func valueOr(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

const (
	defaultZoomExpr   = "min(zoom+0.0015,1.5)"
	defaultZoomX      = "iw/2-(iw/zoom/2)"
	defaultZoomY      = "ih/2-(ih/zoom/2)"
	defaultZoomFPS    = 25
	defaultZoomWindow = 5.0
)

func zoompanBody(opts *timeline.FilterOptions, layerDuration float64, global timeline.GlobalOptions) string {
	zoom := opts.Zoom
	if zoom == "" {
		zoom = defaultZoomExpr
	}
	x := opts.X
	if x == "" {
		x = defaultZoomX
	}
	y := opts.Y
	if y == "" {
		y = defaultZoomY
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultZoomFPS
	}
	window := opts.Duration
	if window <= 0 {
		window = layerDuration
	}
	if window <= 0 {
		window = defaultZoomWindow
	}
	size := opts.Size
	if size == "" {
		if global.Scale != nil && global.Scale.Width > 0 && global.Scale.Height > 0 {
			size = strconv.Itoa(global.Scale.Width) + "x" + strconv.Itoa(global.Scale.Height)
		} else {
			size = "1280x720"
		}
	}
	frames := int(window * float64(fps))
	return "zoompan=z='" + zoom + "':x='" + x + "':y='" + y +
		"':d=" + strconv.Itoa(frames) + ":s=" + size + ":fps=" + strconv.Itoa(fps)
}

func colorMixerBody(opts *timeline.FilterOptions) string {
	coeffs := []struct {
		name  string
		value *float64
	}{
		{"rr", opts.RR}, {"rg", opts.RG}, {"rb", opts.RB},
		{"gr", opts.GR}, {"gg", opts.GG}, {"gb", opts.GB},
		{"br", opts.BR}, {"bg", opts.BG}, {"bb", opts.BB},
	}
	var parts []string
	for _, c := range coeffs {
		if c.value != nil {
			parts = append(parts, c.name+"="+formatFloat(*c.value))
		}
	}
	if len(parts) == 0 {
		return "colorchannelmixer"
	}
	return "colorchannelmixer=" + strings.Join(parts, ":")
}
