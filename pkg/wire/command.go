// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"net/http"
)

// RequestData is a fully-built protocol request: HTTP method, URL path
// relative to the server base URL, and an optional JSON body. A nil
// Body means the request is sent without one; commands that need an
// empty body carry an explicit empty object, because the protocol
// requires well-formed JSON even when there is nothing to say.
type RequestData struct {
	Method string
	URL    string
	Body   any
}

func newRequest(method, url string) RequestData {
	return RequestData{Method: method, URL: url}
}

func (r RequestData) withBody(body any) RequestData {
	r.Body = body
	return r
}

// params is a JSON object request body.
type params map[string]any

// Command is one W3C WebDriver operation. The set of implementations
// in this package is closed: every operation the protocol defines maps
// to exactly one (method, URL, body) triple, and an operation without
// a Request method cannot exist.
//
// Request is total and pure. It never fails, performs no I/O, and the
// same command and session id always produce the same RequestData.
type Command interface {
	Request(session SessionID) RequestData
}

// Actions is a raw W3C action sequence, one object per input source.
// The shape is forwarded to the server untouched.
type Actions []any

// NewSession starts a session. The body carries both the W3C
// "capabilities" key and the legacy "desiredCapabilities" key so that
// servers speaking either dialect can pick the one they understand;
// some legacy-aware servers insist on the old key even when they
// accept the new one.
type NewSession struct {
	Caps Capabilities
}

func (c NewSession) Request(SessionID) RequestData {
	return newRequest(http.MethodPost, "/session").withBody(params{
		"capabilities":        c.Caps.W3C(),
		"desiredCapabilities": map[string]any(c.Caps),
	})
}

// DeleteSession ends the session.
type DeleteSession struct{}

func (c DeleteSession) Request(session SessionID) RequestData {
	return newRequest(http.MethodDelete, fmt.Sprintf("/session/%s", session))
}

// Status queries server readiness. It is the only command whose URL is
// independent of any session.
type Status struct{}

func (c Status) Request(SessionID) RequestData {
	return newRequest(http.MethodGet, "/status")
}

// GetTimeouts reads the session timeout configuration.
type GetTimeouts struct{}

func (c GetTimeouts) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/timeouts", session))
}

// SetTimeouts updates the session timeout configuration. The
// configuration is the body itself, with no wrapper key.
type SetTimeouts struct {
	Config TimeoutConfiguration
}

func (c SetTimeouts) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/timeouts", session)).
		withBody(c.Config)
}

// NavigateTo loads a URL in the current top-level browsing context.
type NavigateTo struct {
	URL string
}

func (c NavigateTo) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/url", session)).
		withBody(params{"url": c.URL})
}

// GetCurrentURL reads the current page URL.
type GetCurrentURL struct{}

func (c GetCurrentURL) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/url", session))
}

// Back navigates backwards in the browser history.
type Back struct{}

func (c Back) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/back", session)).
		withBody(params{})
}

// Forward navigates forwards in the browser history.
type Forward struct{}

func (c Forward) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/forward", session)).
		withBody(params{})
}

// Refresh reloads the current page.
type Refresh struct{}

func (c Refresh) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/refresh", session)).
		withBody(params{})
}

// GetTitle reads the current page title.
type GetTitle struct{}

func (c GetTitle) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/title", session))
}

// GetWindowHandle reads the handle of the current window.
type GetWindowHandle struct{}

func (c GetWindowHandle) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/window", session))
}

// CloseWindow closes the current window.
type CloseWindow struct{}

func (c CloseWindow) Request(session SessionID) RequestData {
	return newRequest(http.MethodDelete, fmt.Sprintf("/session/%s/window", session))
}

// SwitchToWindow makes another window the current one.
type SwitchToWindow struct {
	Handle WindowHandle
}

func (c SwitchToWindow) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/window", session)).
		withBody(params{"handle": c.Handle.String()})
}

// GetWindowHandles lists the handles of all open windows.
type GetWindowHandles struct{}

func (c GetWindowHandles) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/window/handles", session))
}

// SwitchToFrameDefault switches to the top-level browsing context.
// The frame endpoint multiplexes three mutually exclusive target
// forms on the "id" key: null, a frame index, or an element reference.
type SwitchToFrameDefault struct{}

func (c SwitchToFrameDefault) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/frame", session)).
		withBody(params{"id": nil})
}

// SwitchToFrameNumber switches to the frame at the given index.
type SwitchToFrameNumber struct {
	Number int
}

func (c SwitchToFrameNumber) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/frame", session)).
		withBody(params{"id": c.Number})
}

// SwitchToFrameElement switches to the frame owned by a located
// element. The element reference is the usual dual-key object.
type SwitchToFrameElement struct {
	ID ElementID
}

func (c SwitchToFrameElement) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/frame", session)).
		withBody(params{"id": c.ID.WireRef()})
}

// SwitchToParentFrame switches to the parent of the current frame.
type SwitchToParentFrame struct{}

func (c SwitchToParentFrame) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/frame/parent", session)).
		withBody(params{})
}

// GetWindowRect reads the current window rectangle.
type GetWindowRect struct{}

func (c GetWindowRect) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/window/rect", session))
}

// SetWindowRect moves or resizes the current window. The rectangle is
// forwarded verbatim; fields left unset stay absent so the server
// keeps the corresponding dimension.
type SetWindowRect struct {
	Rect OptionRect
}

func (c SetWindowRect) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/window/rect", session)).
		withBody(c.Rect)
}

// MaximizeWindow maximizes the current window.
type MaximizeWindow struct{}

func (c MaximizeWindow) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/window/maximize", session)).
		withBody(params{})
}

// MinimizeWindow minimizes the current window.
type MinimizeWindow struct{}

func (c MinimizeWindow) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/window/minimize", session)).
		withBody(params{})
}

// FullscreenWindow puts the current window into fullscreen.
type FullscreenWindow struct{}

func (c FullscreenWindow) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/window/fullscreen", session)).
		withBody(params{})
}

// GetActiveElement reads the element that currently has focus.
type GetActiveElement struct{}

func (c GetActiveElement) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/active", session))
}

// FindElement locates the first element matching the locator, searching
// from the document root.
type FindElement struct {
	By By
}

func (c FindElement) Request(session SessionID) RequestData {
	using, value := c.By.Selector()
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/element", session)).
		withBody(params{"using": using, "value": value})
}

// FindElements locates all elements matching the locator, searching
// from the document root.
type FindElements struct {
	By By
}

func (c FindElements) Request(session SessionID) RequestData {
	using, value := c.By.Selector()
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/elements", session)).
		withBody(params{"using": using, "value": value})
}

// FindElementFromElement locates the first matching element below a
// known element.
type FindElementFromElement struct {
	ID ElementID
	By By
}

func (c FindElementFromElement) Request(session SessionID) RequestData {
	using, value := c.By.Selector()
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/element/%s/element", session, c.ID)).
		withBody(params{"using": using, "value": value})
}

// FindElementsFromElement locates all matching elements below a known
// element.
type FindElementsFromElement struct {
	ID ElementID
	By By
}

func (c FindElementsFromElement) Request(session SessionID) RequestData {
	using, value := c.By.Selector()
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/element/%s/elements", session, c.ID)).
		withBody(params{"using": using, "value": value})
}

// IsElementSelected asks whether an option/checkbox/radio element is
// selected.
type IsElementSelected struct {
	ID ElementID
}

func (c IsElementSelected) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/%s/selected", session, c.ID))
}

// GetElementAttribute reads an element attribute by name.
type GetElementAttribute struct {
	ID   ElementID
	Name string
}

func (c GetElementAttribute) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet,
		fmt.Sprintf("/session/%s/element/%s/attribute/%s", session, c.ID, c.Name))
}

// GetElementProperty reads an element property by name. Structurally
// identical to the attribute lookup; only the URL segment differs.
type GetElementProperty struct {
	ID   ElementID
	Name string
}

func (c GetElementProperty) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet,
		fmt.Sprintf("/session/%s/element/%s/property/%s", session, c.ID, c.Name))
}

// GetElementCSSValue reads a computed CSS property of an element.
type GetElementCSSValue struct {
	ID   ElementID
	Name string
}

func (c GetElementCSSValue) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet,
		fmt.Sprintf("/session/%s/element/%s/css/%s", session, c.ID, c.Name))
}

// GetElementText reads an element's visible text.
type GetElementText struct {
	ID ElementID
}

func (c GetElementText) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/%s/text", session, c.ID))
}

// GetElementTagName reads an element's tag name.
type GetElementTagName struct {
	ID ElementID
}

func (c GetElementTagName) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/%s/name", session, c.ID))
}

// GetElementRect reads an element's rectangle.
type GetElementRect struct {
	ID ElementID
}

func (c GetElementRect) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/%s/rect", session, c.ID))
}

// IsElementEnabled asks whether an element is enabled.
type IsElementEnabled struct {
	ID ElementID
}

func (c IsElementEnabled) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/%s/enabled", session, c.ID))
}

// ElementClick clicks an element.
type ElementClick struct {
	ID ElementID
}

func (c ElementClick) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/element/%s/click", session, c.ID)).
		withBody(params{})
}

// ElementClear clears a text input or textarea.
type ElementClear struct {
	ID ElementID
}

func (c ElementClear) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/element/%s/clear", session, c.ID)).
		withBody(params{})
}

// ElementSendKeys types into an element. Both views of the keystroke
// sequence are sent: the flattened "text" form and the per-character
// "value" form.
type ElementSendKeys struct {
	ID   ElementID
	Keys TypingData
}

func (c ElementSendKeys) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/element/%s/value", session, c.ID)).
		withBody(params{"text": c.Keys.String(), "value": c.Keys.Values()})
}

// GetPageSource reads the serialized source of the current page.
type GetPageSource struct{}

func (c GetPageSource) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/source", session))
}

// ExecuteScript runs a script synchronously in the page. A nil Args is
// sent as an empty array, never null.
type ExecuteScript struct {
	Script string
	Args   []any
}

func (c ExecuteScript) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/execute/sync", session)).
		withBody(params{"script": c.Script, "args": scriptArgs(c.Args)})
}

// ExecuteAsyncScript runs a script that signals completion through a
// callback. Only the URL suffix differs from ExecuteScript.
type ExecuteAsyncScript struct {
	Script string
	Args   []any
}

func (c ExecuteAsyncScript) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/execute/async", session)).
		withBody(params{"script": c.Script, "args": scriptArgs(c.Args)})
}

func scriptArgs(args []any) []any {
	if args == nil {
		return []any{}
	}
	return args
}

// GetAllCookies lists all cookies visible to the current page.
type GetAllCookies struct{}

func (c GetAllCookies) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/cookie", session))
}

// GetNamedCookie reads a single cookie by name.
type GetNamedCookie struct {
	Name string
}

func (c GetNamedCookie) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/cookie/%s", session, c.Name))
}

// AddCookie sets a cookie. The cookie record is nested under a
// "cookie" key.
type AddCookie struct {
	Cookie Cookie
}

func (c AddCookie) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/cookie", session)).
		withBody(params{"cookie": c.Cookie})
}

// DeleteCookie removes a single cookie by name.
type DeleteCookie struct {
	Name string
}

func (c DeleteCookie) Request(session SessionID) RequestData {
	return newRequest(http.MethodDelete, fmt.Sprintf("/session/%s/cookie/%s", session, c.Name))
}

// DeleteAllCookies removes all cookies visible to the current page.
type DeleteAllCookies struct{}

func (c DeleteAllCookies) Request(session SessionID) RequestData {
	return newRequest(http.MethodDelete, fmt.Sprintf("/session/%s/cookie", session))
}

// PerformActions dispatches a W3C action sequence.
type PerformActions struct {
	Actions Actions
}

func (c PerformActions) Request(session SessionID) RequestData {
	actions := c.Actions
	if actions == nil {
		actions = Actions{}
	}
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/actions", session)).
		withBody(params{"actions": []any(actions)})
}

// ReleaseActions releases all pressed keys and buttons.
type ReleaseActions struct{}

func (c ReleaseActions) Request(session SessionID) RequestData {
	return newRequest(http.MethodDelete, fmt.Sprintf("/session/%s/actions", session))
}

// DismissAlert dismisses the current user prompt.
type DismissAlert struct{}

func (c DismissAlert) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/alert/dismiss", session)).
		withBody(params{})
}

// AcceptAlert accepts the current user prompt.
type AcceptAlert struct{}

func (c AcceptAlert) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/alert/accept", session)).
		withBody(params{})
}

// GetAlertText reads the text of the current user prompt.
type GetAlertText struct{}

func (c GetAlertText) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/alert/text", session))
}

// SendAlertText types into the current prompt. As with element
// send-keys, both views of the keystroke sequence are sent.
type SendAlertText struct {
	Keys TypingData
}

func (c SendAlertText) Request(session SessionID) RequestData {
	return newRequest(http.MethodPost, fmt.Sprintf("/session/%s/alert/text", session)).
		withBody(params{"text": c.Keys.String(), "value": c.Keys.Values()})
}

// TakeScreenshot captures the viewport as base64 PNG data.
type TakeScreenshot struct{}

func (c TakeScreenshot) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/screenshot", session))
}

// TakeElementScreenshot captures a single element as base64 PNG data.
type TakeElementScreenshot struct {
	ID ElementID
}

func (c TakeElementScreenshot) Request(session SessionID) RequestData {
	return newRequest(http.MethodGet, fmt.Sprintf("/session/%s/element/%s/screenshot", session, c.ID))
}
