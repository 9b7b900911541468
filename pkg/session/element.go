// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/drayke/webwire/pkg/wire"
)

// Element is a handle to a DOM element inside a session.
type Element struct {
	id      wire.ElementID
	session *Session
}

// ID returns the server-assigned element reference.
func (e *Element) ID() wire.ElementID { return e.id }

func (e *Element) do(ctx context.Context, cmd wire.Command) (json.RawMessage, error) {
	return e.session.do(ctx, cmd)
}

func elementUnwrap[T any](ctx context.Context, e *Element, cmd wire.Command) (T, error) {
	value, err := e.do(ctx, cmd)
	if err != nil {
		var zero T
		return zero, err
	}
	return wire.Unwrap[T](value)
}

// Click clicks the element.
func (e *Element) Click(ctx context.Context) error {
	_, err := e.do(ctx, wire.ElementClick{ID: e.id})
	return err
}

// Clear resets the element's value.
func (e *Element) Clear(ctx context.Context) error {
	_, err := e.do(ctx, wire.ElementClear{ID: e.id})
	return err
}

// SendKeys types into the element.
func (e *Element) SendKeys(ctx context.Context, keys wire.TypingData) error {
	_, err := e.do(ctx, wire.ElementSendKeys{ID: e.id, Keys: keys})
	return err
}

// Text returns the element's rendered text.
func (e *Element) Text(ctx context.Context) (string, error) {
	return elementUnwrap[string](ctx, e, wire.GetElementText{ID: e.id})
}

// TagName returns the element's tag name.
func (e *Element) TagName(ctx context.Context) (string, error) {
	return elementUnwrap[string](ctx, e, wire.GetElementTagName{ID: e.id})
}

// Rect returns the element's bounding rectangle.
func (e *Element) Rect(ctx context.Context) (wire.Rect, error) {
	return elementUnwrap[wire.Rect](ctx, e, wire.GetElementRect{ID: e.id})
}

// Attribute reads an HTML attribute. A missing attribute comes back as
// the empty string.
func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	return elementUnwrap[string](ctx, e, wire.GetElementAttribute{ID: e.id, Name: name})
}

// Property reads a DOM property as its raw JSON value; properties are
// not limited to strings.
func (e *Element) Property(ctx context.Context, name string) (json.RawMessage, error) {
	return e.do(ctx, wire.GetElementProperty{ID: e.id, Name: name})
}

// CSSValue reads a computed CSS property.
func (e *Element) CSSValue(ctx context.Context, name string) (string, error) {
	return elementUnwrap[string](ctx, e, wire.GetElementCSSValue{ID: e.id, Name: name})
}

// Selected reports whether the element is selected or checked.
func (e *Element) Selected(ctx context.Context) (bool, error) {
	return elementUnwrap[bool](ctx, e, wire.IsElementSelected{ID: e.id})
}

// Enabled reports whether the element is enabled.
func (e *Element) Enabled(ctx context.Context) (bool, error) {
	return elementUnwrap[bool](ctx, e, wire.IsElementEnabled{ID: e.id})
}

// Find locates the first matching descendant of this element.
func (e *Element) Find(ctx context.Context, by wire.By) (*Element, error) {
	value, err := e.do(ctx, wire.FindElementFromElement{ID: e.id, By: by})
	if err != nil {
		return nil, err
	}
	return e.session.elementFromValue(value)
}

// FindAll locates all matching descendants of this element.
func (e *Element) FindAll(ctx context.Context, by wire.By) ([]*Element, error) {
	value, err := e.do(ctx, wire.FindElementsFromElement{ID: e.id, By: by})
	if err != nil {
		return nil, err
	}
	return e.session.elementsFromValue(value)
}

// Screenshot captures just this element and returns decoded PNG bytes.
func (e *Element) Screenshot(ctx context.Context) ([]byte, error) {
	value, err := e.do(ctx, wire.TakeElementScreenshot{ID: e.id})
	if err != nil {
		return nil, err
	}
	encoded, err := wire.Unwrap[string](value)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(encoded)
}
