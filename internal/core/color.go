package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for menu elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds approximate sRGB values for each color, used for luminance.
var palette = map[Color][3]uint8{
	ColorDefault:      {192, 192, 192},
	ColorRed:          {205, 49, 49},
	ColorGreen:        {13, 188, 121},
	ColorYellow:       {229, 229, 16},
	ColorBlue:         {36, 114, 200},
	ColorMagenta:      {188, 63, 188},
	ColorCyan:         {17, 168, 205},
	ColorWhite:        {229, 229, 229},
	ColorBrightYellow: {245, 245, 67},
	ColorBrightWhite:  {255, 255, 255},
	ColorOrange:       {255, 135, 0},
	ColorGray:         {138, 138, 138},
}

// RGB returns the approximate red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8) {
	rgb, ok := palette[c]
	if !ok {
		rgb = palette[ColorDefault]
	}
	return rgb[0], rgb[1], rgb[2]
}

// Luminance returns the relative brightness of the color in [0, 1]
// using Rec. 709 weights.
func (c Color) Luminance() float64 {
	r, g, b := c.RGB()
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// NearestColor returns the palette color closest to the given RGB value.
func NearestColor(r, g, b uint8) Color {
	best := ColorDefault
	bestDist := -1
	for c, rgb := range palette {
		dr := int(rgb[0]) - int(r)
		dg := int(rgb[1]) - int(g)
		db := int(rgb[2]) - int(b)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist || (dist == bestDist && c < best) {
			best = c
			bestDist = dist
		}
	}
	return best
}
