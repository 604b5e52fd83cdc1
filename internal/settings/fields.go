package settings

import "math"

// NumericField names a numeric member of Settings.
type NumericField int

const (
	FieldFPS NumericField = iota
	FieldScreenShake
	FieldMusic
	FieldSound
)

// String returns the JSON key of the field.
func (f NumericField) String() string {
	switch f {
	case FieldFPS:
		return "fps"
	case FieldScreenShake:
		return "screen_shake"
	case FieldMusic:
		return "music"
	case FieldSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Integral reports whether the field is stored as an integer.
func (f NumericField) Integral() bool {
	return f != FieldScreenShake
}

// BoolField names a boolean member of Settings.
type BoolField int

const (
	FieldBloom BoolField = iota
	FieldChromaticAberration
	FieldAntiAliasing
	FieldOtherDistortionEffects
)

// String returns the JSON key of the field.
func (f BoolField) String() string {
	switch f {
	case FieldBloom:
		return "bloom"
	case FieldChromaticAberration:
		return "chromatic_aberration"
	case FieldAntiAliasing:
		return "anti_aliasing"
	case FieldOtherDistortionEffects:
		return "other_distortion_effects"
	default:
		return "unknown"
	}
}

// Number returns the value of a numeric field.
func (s Settings) Number(f NumericField) float64 {
	switch f {
	case FieldFPS:
		return float64(s.FPS)
	case FieldScreenShake:
		return s.ScreenShake
	case FieldMusic:
		return float64(s.Music)
	case FieldSound:
		return float64(s.Sound)
	default:
		return 0
	}
}

// SetNumber stores v into a numeric field. Integer fields are rounded.
func (s *Settings) SetNumber(f NumericField, v float64) {
	switch f {
	case FieldFPS:
		s.FPS = int(math.Round(v))
	case FieldScreenShake:
		s.ScreenShake = v
	case FieldMusic:
		s.Music = int(math.Round(v))
	case FieldSound:
		s.Sound = int(math.Round(v))
	}
}

// Flag returns the value of a boolean field.
func (s Settings) Flag(f BoolField) bool {
	switch f {
	case FieldBloom:
		return s.Bloom
	case FieldChromaticAberration:
		return s.ChromaticAberration
	case FieldAntiAliasing:
		return s.AntiAliasing
	case FieldOtherDistortionEffects:
		return s.OtherDistortionEffects
	default:
		return false
	}
}

// SetFlag stores v into a boolean field.
func (s *Settings) SetFlag(f BoolField, v bool) {
	switch f {
	case FieldBloom:
		s.Bloom = v
	case FieldChromaticAberration:
		s.ChromaticAberration = v
	case FieldAntiAliasing:
		s.AntiAliasing = v
	case FieldOtherDistortionEffects:
		s.OtherDistortionEffects = v
	}
}
