package core

// Color is a semantic foreground colour for a screen cell.
// The platform layer maps each value to an ANSI 256-colour code.
type Color uint8

// Palette used by maze renderers.
const (
	ColorDefault Color = iota
	ColorSolid
	ColorDestructible
	ColorDamaged
	ColorReward
	ColorHeal
	ColorExit
	ColorStart
	ColorSpawn
	ColorEnemy
	ColorPath
	ColorSight
	ColorCursor
	ColorText
)

// ANSI returns the ANSI 256-colour code for the colour, or "" for the
// terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorSolid:
		return "245"
	case ColorDestructible:
		return "130"
	case ColorDamaged:
		return "94"
	case ColorReward:
		return "220"
	case ColorHeal:
		return "75"
	case ColorExit:
		return "40"
	case ColorStart:
		return "15"
	case ColorSpawn:
		return "14"
	case ColorEnemy:
		return "196"
	case ColorPath:
		return "201"
	case ColorSight:
		return "226"
	case ColorCursor:
		return "231"
	case ColorText:
		return "250"
	default:
		return ""
	}
}
