package utils

import (
	"fmt"
	"image/color"
)

type ColorName uint8

const (
	Red ColorName = iota
	Blue
	Magenta
	Green
	Black
	White
)

// ComponentColors is the cycle used for per-component lines, matching 'r','b','m','g'.
var ComponentColors = []ColorName{Red, Blue, Magenta, Green}

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Blue:
		c = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case Magenta:
		c = color.RGBA{R: 191, G: 0, B: 191, A: 255}
	case Green:
		c = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Black:
		fallthrough
	default:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	return
}

// ComponentColor picks the line colour for the j-th component, wrapping around the cycle.
func ComponentColor(j int) ColorName {
	return ComponentColors[j%len(ComponentColors)]
}

func NewColorName(label string) (cn ColorName, err error) {
	switch label {
	case "r", "red":
		cn = Red
	case "b", "blue":
		cn = Blue
	case "m", "magenta":
		cn = Magenta
	case "g", "green":
		cn = Green
	case "k", "black":
		cn = Black
	case "w", "white":
		cn = White
	default:
		err = fmt.Errorf("unknown color name %q", label)
	}
	return
}
