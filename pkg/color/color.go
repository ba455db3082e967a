package color

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const (
	Red          = "1"
	Green        = "2"
	Yellow       = "3"
	Blue         = "4"
	Magenta      = "5"
	Cyan         = "6"
	Gray         = "8"
	BrightRed    = "9"
	BrightYellow = "11"
)

var profile = termenv.ANSI

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal() {
		profile = termenv.Ascii
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// EnableColor switches styling on or off for every helper in this package
func EnableColor(enable bool) {
	if enable {
		profile = termenv.ANSI
		return
	}
	profile = termenv.Ascii
}

func IsColorEnabled() bool {
	return profile != termenv.Ascii
}

// Profile returns the termenv profile in use
func Profile() termenv.Profile {
	return profile
}

func Colorize(color, text string) string {
	return profile.String(text).Foreground(profile.Color(color)).String()
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func MagentaText(text string) string {
	return Colorize(Magenta, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return profile.String(text).Bold().String()
}

func Position(line, col int) string {
	return CyanText(fmt.Sprintf("%d:%d", line, col))
}

// ErrorWithPosition formats a diagnostic followed by its source context
func ErrorWithPosition(line, col int, message, context string) string {
	if !IsColorEnabled() {
		return fmt.Sprintf("Error at %d:%d: %s\n%s", line, col, message, context)
	}

	return fmt.Sprintf("%s at %s: %s\n%s",
		BrightRedText(BoldText("Error")),
		Position(line, col),
		message,
		GrayText(context))
}

// RuntimeError formats an evaluation failure
func RuntimeError(message string) string {
	return BrightRedText("Runtime error: ") + message
}

// Result formats an evaluated value; kind selects the color
func Result(kind, text string) string {
	switch strings.ToLower(kind) {
	case "number":
		return BlueText(text)
	case "string":
		return GreenText(fmt.Sprintf("%q", text))
	case "bool":
		return MagentaText(text)
	default:
		return text
	}
}
