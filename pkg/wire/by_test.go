// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBySelector(t *testing.T) {
	tests := []struct {
		name  string
		by    By
		using string
		value string
	}{
		{"id", ByID("x"), "css selector", `[id="x"]`},
		{"name", ByName("q"), "css selector", `[name="q"]`},
		{"class name", ByClassName("x"), "css selector", ".x"},
		{"tag", ByTag("div"), "css selector", "div"},
		{"css", ByCSS("x"), "css selector", "x"},
		{"css compound", ByCSS("#login > input"), "css selector", "#login > input"},
		{"xpath", ByXPath("//x"), "xpath", "//x"},
		{"link text", ByLinkText("Sign in"), "link text", "Sign in"},
		{"partial link text", ByPartialLinkText("Sign"), "partial link text", "Sign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			using, value := tt.by.Selector()
			assert.Equal(t, tt.using, using)
			assert.Equal(t, tt.value, value)
		})
	}
}

// Malformed selectors pass through untouched; the server is the one
// that rejects them.
func TestByNoValidation(t *testing.T) {
	using, value := ByXPath("//[broken").Selector()
	assert.Equal(t, "xpath", using)
	assert.Equal(t, "//[broken", value)
}
