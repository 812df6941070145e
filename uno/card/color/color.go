package color

import (
	"fmt"

	"github.com/fatih/color"
)

// Color is one of the five UNO card colors. It is a plain string so cards
// survive the trip through the shared game document unchanged.
type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Black  Color = "black"
)

var paintFunctions = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Black:  color.New(color.FgHiWhite, color.BgBlack).SprintfFunc(),
}

// Wildable lists the colors a player may choose for a wild card.
var Wildable = []Color{Red, Yellow, Green, Blue}

func (c Color) Valid() bool {
	_, ok := paintFunctions[c]
	return ok
}

// Paint renders text in the color's terminal escape sequence, for logs and
// broadcast messages.
func (c Color) Paint(text string) string {
	paint := paintFunctions[c]
	if paint == nil {
		return text
	}
	return paint(text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c Color) String() string {
	return string(c)
}

func ByName(name string) (Color, error) {
	c := Color(name)
	if !c.Valid() || c == Black {
		return "", fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
