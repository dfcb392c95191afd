// Package ui holds the terminal colours and tables shared by BookMark's
// commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme switches every colour to its light variant, which reads better
// on dark terminal backgrounds.
var DarkTheme bool

func pick(dark, light pterm.Color, a any) string {
	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string {
	return pick(pterm.FgLightGreen, pterm.FgGreen, a)
}

func Magenta(a any) string {
	return pick(pterm.FgLightMagenta, pterm.FgMagenta, a)
}

func Blue(a any) string {
	return pick(pterm.FgLightBlue, pterm.FgBlue, a)
}

func Red(a any) string {
	return pick(pterm.FgLightRed, pterm.FgRed, a)
}

func Yellow(a any) string {
	return pick(pterm.FgLightYellow, pterm.FgYellow, a)
}
