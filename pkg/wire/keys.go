// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import "strings"

// WebDriver key code points from the Unicode private use area
// (W3C WebDriver ch. 17). Concatenate them with literal text when
// building a TypingData.
const (
	KeyNull      = "\uE000"
	KeyCancel    = "\uE001"
	KeyHelp      = "\uE002"
	KeyBackspace = "\uE003"
	KeyTab       = "\uE004"
	KeyClear     = "\uE005"
	KeyReturn    = "\uE006"
	KeyEnter     = "\uE007"
	KeyShift     = "\uE008"
	KeyControl   = "\uE009"
	KeyAlt       = "\uE00A"
	KeyPause     = "\uE00B"
	KeyEscape    = "\uE00C"
	KeySpace     = "\uE00D"
	KeyPageUp    = "\uE00E"
	KeyPageDown  = "\uE00F"
	KeyEnd       = "\uE010"
	KeyHome      = "\uE011"
	KeyLeft      = "\uE012"
	KeyUp        = "\uE013"
	KeyRight     = "\uE014"
	KeyDown      = "\uE015"
	KeyInsert    = "\uE016"
	KeyDelete    = "\uE017"
	KeySemicolon = "\uE018"
	KeyEquals    = "\uE019"
	KeyMeta      = "\uE03D"
)

// TypingData is a keystroke sequence sent to an element or an alert
// prompt. Requests that send keys emit both of its views: the
// flattened "text" string and the per-character "value" array.
type TypingData struct {
	text string
}

// Type builds a TypingData from literal text and key constants, joined
// in order.
func Type(parts ...string) TypingData {
	return TypingData{text: strings.Join(parts, "")}
}

// String returns the flattened text view.
func (t TypingData) String() string { return t.text }

// Values returns the per-character view, one string per rune.
func (t TypingData) Values() []string {
	values := make([]string, 0, len(t.text))
	for _, r := range t.text {
		values = append(values, string(r))
	}
	return values
}
