// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import "fmt"

// Location strategy names defined by the W3C protocol.
const (
	usingCSS             = "css selector"
	usingXPath           = "xpath"
	usingLinkText        = "link text"
	usingPartialLinkText = "partial link text"
)

// By selects elements by a semantic strategy. The protocol has no
// native id, name, or class-name strategies, so those are synthesized
// as CSS selectors here; keeping the rewriting in one place means
// every find command sends the same selector for the same input.
//
// The target string is passed to the server as-is. Malformed CSS or
// XPath is not detected here and surfaces as a server-side
// invalid-selector error.
type By struct {
	using string
	value string
}

// ByID matches the element whose id attribute equals id.
func ByID(id string) By {
	return By{using: usingCSS, value: fmt.Sprintf("[id=%q]", id)}
}

// ByName matches elements whose name attribute equals name.
func ByName(name string) By {
	return By{using: usingCSS, value: fmt.Sprintf("[name=%q]", name)}
}

// ByClassName matches elements carrying the given class.
func ByClassName(class string) By {
	return By{using: usingCSS, value: "." + class}
}

// ByTag matches elements by tag name.
func ByTag(tag string) By {
	return By{using: usingCSS, value: tag}
}

// ByCSS matches elements by a CSS selector.
func ByCSS(selector string) By {
	return By{using: usingCSS, value: selector}
}

// ByXPath matches elements by an XPath expression.
func ByXPath(xpath string) By {
	return By{using: usingXPath, value: xpath}
}

// ByLinkText matches anchor elements whose visible text equals text.
func ByLinkText(text string) By {
	return By{using: usingLinkText, value: text}
}

// ByPartialLinkText matches anchor elements whose visible text
// contains text.
func ByPartialLinkText(text string) By {
	return By{using: usingPartialLinkText, value: text}
}

// Selector returns the (using, value) pair sent to the server.
func (b By) Selector() (using, value string) {
	return b.using, b.value
}

func (b By) String() string {
	return fmt.Sprintf("%s %q", b.using, b.value)
}
