package models

import "strings"

// RGB represents a color with components in the [0,1] range, matching the
// Google Sheets API color model.
type RGB struct {
	// R is the red component.
	R float64 `json:"red"`
	// G is the green component.
	G float64 `json:"green"`
	// B is the blue component.
	B float64 `json:"blue"`
}

// Colors maps supported color names to RGB values. Used by the formatting
// commands; treat as read-only.
var Colors = map[string]RGB{
	"black":   {0, 0, 0},
	"white":   {1, 1, 1},
	"red":     {1, 0, 0},
	"green":   {0, 1, 0},
	"blue":    {0, 0, 1},
	"yellow":  {1, 1, 0},
	"orange":  {1, 0.6, 0},
	"purple":  {0.5, 0, 0.5},
	"pink":    {1, 0.75, 0.8},
	"gray":    {0.5, 0.5, 0.5},
	"grey":    {0.5, 0.5, 0.5},
	"cyan":    {0, 1, 1},
	"magenta": {1, 0, 1},
	"brown":   {0.6, 0.4, 0.2},
	"lime":    {0.75, 1, 0},
	"teal":    {0, 0.5, 0.5},
	"navy":    {0, 0, 0.5},
	"maroon":  {0.5, 0, 0},
	"olive":   {0.5, 0.5, 0},
	"silver":  {0.75, 0.75, 0.75},
	"gold":    {1, 0.84, 0},
}

// LookupColor resolves a color name case-insensitively.
func LookupColor(name string) (RGB, bool) {
	c, ok := Colors[strings.ToLower(name)]
	return c, ok
}
