// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedCapabilities reports a capabilities document that cannot
// be interpreted as a JSON object and so cannot be expressed in both
// wire dialects.
var ErrMalformedCapabilities = errors.New("webwire: capabilities document is not a JSON object")

// Capabilities is a desired-capabilities document. The same document
// feeds both dialects of the session-creation body: verbatim under
// "desiredCapabilities" and wrapped by W3C under "capabilities".
type Capabilities map[string]any

// NewCapabilities returns a document requesting the named browser.
func NewCapabilities(browserName string) Capabilities {
	return Capabilities{"browserName": browserName}
}

// Set stores a capability and returns the document for chaining.
func (c Capabilities) Set(key string, value any) Capabilities {
	c[key] = value
	return c
}

// W3C returns the modern "always match" shape for this document.
func (c Capabilities) W3C() map[string]any {
	return map[string]any{"alwaysMatch": map[string]any(c)}
}

// ParseCapabilities interprets a raw JSON value as a capabilities
// document. Anything other than a JSON object fails with
// ErrMalformedCapabilities.
func ParseCapabilities(raw json.RawMessage) (Capabilities, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCapabilities, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrMalformedCapabilities
	}
	return Capabilities(obj), nil
}
