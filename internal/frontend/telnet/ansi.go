// Package telnet provides the line-oriented Telnet front end with optional
// ANSI styling.
package telnet

import "regexp"

// ANSI SGR sequences used by the renderers.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

var sgrPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// Styler applies ANSI styles when enabled and passes text through otherwise.
type Styler struct {
	enabled bool
}

// NewStyler returns a Styler; enabled mirrors the telnet.color setting.
func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

// Paint wraps text with style and a reset suffix.
//
// Postcondition: Returns text unchanged when the Styler is disabled.
func (s Styler) Paint(style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return style + text + Reset
}

// StripANSI removes every SGR escape sequence from s.
//
// Postcondition: Returns s without \033[...m sequences.
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
