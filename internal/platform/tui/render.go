package tui

import (
	"image"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/bytedspace/byted-space/internal/config"
	"github.com/bytedspace/byted-space/internal/core"
	"github.com/bytedspace/byted-space/internal/menu"
	"github.com/bytedspace/byted-space/internal/texture"
)

// Size of one terminal cell in logical pixels. One cell row spans one
// menu row pitch, so the pointer lands on the row of its label.
const (
	CellWidth  = 10.0
	CellHeight = 30.0
)

// PointerTexture is the texture key of the menu pointer.
const PointerTexture = "other.pointer"

// Glyphs drawn for frame elements.
const (
	pointerGlyph    = '▶'
	leftArrowGlyph  = '<'
	rightArrowGlyph = '>'
	emptyValueGlyph = '?'
)

// Frame element colors.
const (
	titleColor     = core.ColorBrightYellow
	labelColor     = core.ColorGray
	highlightColor = core.ColorBrightWhite
	valueColor     = core.ColorCyan
	arrowColor     = core.ColorGray
	defaultPointer = core.ColorOrange
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// glowBackgrounds are the background shades for increasing glow levels.
// Level 0 has no background.
var glowBackgrounds = []lipgloss.Color{"", "234", "236", "238"}

// PixelToCell converts a logical pixel position to a screen cell.
func PixelToCell(p menu.Point) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// PointerColor picks the pointer color from its texture. A real texture is
// tinted with its average color, the placeholder keeps the default.
func PointerColor(atlas *texture.Atlas) core.Color {
	img := atlas.Texture(PointerTexture)
	if atlas.IsPlaceholder(img) {
		return defaultPointer
	}
	return tint(img)
}

func tint(img image.Image) core.Color {
	avg := texture.Average(img)
	if avg.A == 0 {
		return defaultPointer
	}
	return core.NearestColor(avg.R, avg.G, avg.B)
}

// Rasterizer draws menu frames into a screen buffer.
type Rasterizer struct {
	Bloom        config.BloomConfig
	PointerColor core.Color
}

// NewRasterizer creates a rasterizer with the given bloom parameters.
func NewRasterizer(bloom config.BloomConfig, pointer core.Color) *Rasterizer {
	return &Rasterizer{Bloom: bloom, PointerColor: pointer}
}

// Draw clears s and draws f. The bloom pass runs only when bloom is true.
func (r *Rasterizer) Draw(s *core.Screen, f menu.Frame, bloom bool) {
	s.Clear()

	if f.HasTitle {
		col, row := PixelToCell(f.TitlePos)
		s.DrawColoredText(col, row, f.Title, titleColor)
	}

	for _, item := range f.Rows {
		col, row := PixelToCell(item.Pos)
		color := labelColor
		if item.Highlighted {
			color = highlightColor
		}
		s.DrawColoredText(col, row, item.Label, color)

		if item.Value != nil {
			r.drawValue(s, item.Value, item.Highlighted)
		}
	}

	col, row := PixelToCell(f.Pointer)
	s.SetColored(col, row, pointerGlyph, r.PointerColor)

	if bloom {
		ApplyBloom(s, r.Bloom)
	}
}

func (r *Rasterizer) drawValue(s *core.Screen, v *menu.ValueView, highlighted bool) {
	col, row := PixelToCell(v.Left)
	s.SetColored(col, row, leftArrowGlyph, arrowColor)
	col, row = PixelToCell(v.Right)
	s.SetColored(col, row, rightArrowGlyph, arrowColor)

	color := valueColor
	if highlighted {
		color = highlightColor
	}
	text := v.Text
	if text == "" {
		text = string(emptyValueGlyph)
	}
	col, row = PixelToCell(v.Center)
	s.DrawColoredText(col-utf8.RuneCountInString(text)/2, row, text, color)
}

// ApplyBloom adds glow around bright cells. Every non-blank cell whose
// color luminance reaches the threshold adds Intensity to itself, fading
// linearly to zero at BlurRadius+1 cells (Chebyshev distance).
func ApplyBloom(s *core.Screen, b config.BloomConfig) {
	if b.Intensity <= 0 {
		return
	}

	type source struct{ x, y int }
	var sources []source
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' && c.Color.Luminance() >= b.Threshold {
				sources = append(sources, source{x, y})
			}
		}
	}

	radius := core.Max(b.BlurRadius, 0)
	for _, src := range sources {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				d := core.Max(core.Abs(dx), core.Abs(dy))
				falloff := 1 - float64(d)/float64(radius+1)
				s.AddGlow(src.x+dx, src.y+dy, b.Intensity*falloff)
			}
		}
	}
}

// glowLevel quantizes a glow value to an index of glowBackgrounds.
func glowLevel(g float64) int {
	if g <= 0 {
		return 0
	}
	last := len(glowBackgrounds) - 1
	return core.Clamp(int(math.Ceil(g*float64(last))), 1, last)
}

type styleKey struct {
	color core.Color
	glow  int
}

func styleFor(k styleKey) lipgloss.Style {
	style, ok := colorStyles[k.color]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if k.glow > 0 {
		style = style.Background(glowBackgrounds[k.glow])
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and glow level to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{cell.Color, glowLevel(cell.Glow)}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{cell.Color, glowLevel(cell.Glow)}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
