// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package session provides the high-level browsing API. A Session
// builds wire commands, runs them through the transport, and decodes
// the typed results.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drayke/webwire/pkg/transport"
	"github.com/drayke/webwire/pkg/wire"
)

// ServerStatus is the server readiness document.
type ServerStatus struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

// Status queries server readiness. It needs no session.
func Status(ctx context.Context, conn *transport.Client) (ServerStatus, error) {
	value, err := conn.Do(ctx, wire.Status{}.Request(""))
	if err != nil {
		return ServerStatus{}, err
	}
	return wire.Unwrap[ServerStatus](value)
}

// Session is a live automation session on a remote server.
type Session struct {
	id   wire.SessionID
	caps wire.Capabilities
	conn *transport.Client
}

type createdSession struct {
	SessionID    string            `json:"sessionId"`
	Capabilities wire.Capabilities `json:"capabilities"`
}

// Open starts a new session with the given capabilities.
func Open(ctx context.Context, conn *transport.Client, caps wire.Capabilities) (*Session, error) {
	value, err := conn.Do(ctx, wire.NewSession{Caps: caps}.Request(""))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	created, err := wire.Unwrap[createdSession](value)
	if err != nil {
		return nil, err
	}
	if created.SessionID == "" {
		return nil, errors.New("webwire: server returned no session id")
	}
	return &Session{
		id:   wire.SessionID(created.SessionID),
		caps: created.Capabilities,
		conn: conn,
	}, nil
}

// ID returns the server-assigned session identifier.
func (s *Session) ID() wire.SessionID { return s.id }

// Capabilities returns the capabilities the server granted at session
// creation.
func (s *Session) Capabilities() wire.Capabilities { return s.caps }

// Close ends the session.
func (s *Session) Close(ctx context.Context) error {
	_, err := s.do(ctx, wire.DeleteSession{})
	return err
}

func (s *Session) do(ctx context.Context, cmd wire.Command) (json.RawMessage, error) {
	return s.conn.Do(ctx, cmd.Request(s.id))
}

func doUnwrap[T any](ctx context.Context, s *Session, cmd wire.Command) (T, error) {
	value, err := s.do(ctx, cmd)
	if err != nil {
		var zero T
		return zero, err
	}
	return wire.Unwrap[T](value)
}

// Navigation.

// Navigate loads the given URL.
func (s *Session) Navigate(ctx context.Context, url string) error {
	_, err := s.do(ctx, wire.NavigateTo{URL: url})
	return err
}

// CurrentURL returns the URL of the current page.
func (s *Session) CurrentURL(ctx context.Context) (string, error) {
	return doUnwrap[string](ctx, s, wire.GetCurrentURL{})
}

// Back navigates backwards in history.
func (s *Session) Back(ctx context.Context) error {
	_, err := s.do(ctx, wire.Back{})
	return err
}

// Forward navigates forwards in history.
func (s *Session) Forward(ctx context.Context) error {
	_, err := s.do(ctx, wire.Forward{})
	return err
}

// Refresh reloads the current page.
func (s *Session) Refresh(ctx context.Context) error {
	_, err := s.do(ctx, wire.Refresh{})
	return err
}

// Title returns the current page title.
func (s *Session) Title(ctx context.Context) (string, error) {
	return doUnwrap[string](ctx, s, wire.GetTitle{})
}

// Source returns the serialized source of the current page.
func (s *Session) Source(ctx context.Context) (string, error) {
	return doUnwrap[string](ctx, s, wire.GetPageSource{})
}

// Timeouts.

// Timeouts reads the session timeout configuration.
func (s *Session) Timeouts(ctx context.Context) (wire.TimeoutConfiguration, error) {
	return doUnwrap[wire.TimeoutConfiguration](ctx, s, wire.GetTimeouts{})
}

// SetTimeouts updates the session timeout configuration.
func (s *Session) SetTimeouts(ctx context.Context, config wire.TimeoutConfiguration) error {
	_, err := s.do(ctx, wire.SetTimeouts{Config: config})
	return err
}

// Windows.

// WindowHandle returns the handle of the current window.
func (s *Session) WindowHandle(ctx context.Context) (wire.WindowHandle, error) {
	return doUnwrap[wire.WindowHandle](ctx, s, wire.GetWindowHandle{})
}

// WindowHandles lists the handles of all open windows.
func (s *Session) WindowHandles(ctx context.Context) ([]wire.WindowHandle, error) {
	value, err := s.do(ctx, wire.GetWindowHandles{})
	if err != nil {
		return nil, err
	}
	return wire.UnwrapSlice[wire.WindowHandle](value)
}

// SwitchToWindow makes another window current.
func (s *Session) SwitchToWindow(ctx context.Context, handle wire.WindowHandle) error {
	_, err := s.do(ctx, wire.SwitchToWindow{Handle: handle})
	return err
}

// CloseWindow closes the current window.
func (s *Session) CloseWindow(ctx context.Context) error {
	_, err := s.do(ctx, wire.CloseWindow{})
	return err
}

// WindowRect reads the current window rectangle.
func (s *Session) WindowRect(ctx context.Context) (wire.Rect, error) {
	return doUnwrap[wire.Rect](ctx, s, wire.GetWindowRect{})
}

// SetWindowRect moves or resizes the current window; unset rectangle
// fields are left alone by the server.
func (s *Session) SetWindowRect(ctx context.Context, rect wire.OptionRect) error {
	_, err := s.do(ctx, wire.SetWindowRect{Rect: rect})
	return err
}

// Maximize maximizes the current window.
func (s *Session) Maximize(ctx context.Context) error {
	_, err := s.do(ctx, wire.MaximizeWindow{})
	return err
}

// Minimize minimizes the current window.
func (s *Session) Minimize(ctx context.Context) error {
	_, err := s.do(ctx, wire.MinimizeWindow{})
	return err
}

// Fullscreen puts the current window into fullscreen.
func (s *Session) Fullscreen(ctx context.Context) error {
	_, err := s.do(ctx, wire.FullscreenWindow{})
	return err
}

// Frames.

// SwitchToDefaultFrame switches to the top-level browsing context.
func (s *Session) SwitchToDefaultFrame(ctx context.Context) error {
	_, err := s.do(ctx, wire.SwitchToFrameDefault{})
	return err
}

// SwitchToFrame switches to the frame at the given index.
func (s *Session) SwitchToFrame(ctx context.Context, number int) error {
	_, err := s.do(ctx, wire.SwitchToFrameNumber{Number: number})
	return err
}

// SwitchToFrameElement switches to the frame owned by an element.
func (s *Session) SwitchToFrameElement(ctx context.Context, el *Element) error {
	_, err := s.do(ctx, wire.SwitchToFrameElement{ID: el.id})
	return err
}

// SwitchToParentFrame switches to the parent of the current frame.
func (s *Session) SwitchToParentFrame(ctx context.Context) error {
	_, err := s.do(ctx, wire.SwitchToParentFrame{})
	return err
}

// Elements.

// ActiveElement returns the element that currently has focus.
func (s *Session) ActiveElement(ctx context.Context) (*Element, error) {
	value, err := s.do(ctx, wire.GetActiveElement{})
	if err != nil {
		return nil, err
	}
	return s.elementFromValue(value)
}

// Find locates the first element matching the locator, searching from
// the document root.
func (s *Session) Find(ctx context.Context, by wire.By) (*Element, error) {
	value, err := s.do(ctx, wire.FindElement{By: by})
	if err != nil {
		return nil, err
	}
	return s.elementFromValue(value)
}

// FindAll locates all elements matching the locator.
func (s *Session) FindAll(ctx context.Context, by wire.By) ([]*Element, error) {
	value, err := s.do(ctx, wire.FindElements{By: by})
	if err != nil {
		return nil, err
	}
	return s.elementsFromValue(value)
}

// Scripts.

// ExecuteScript runs a script synchronously in the page and returns
// its raw result.
func (s *Session) ExecuteScript(ctx context.Context, script string, args []any) (json.RawMessage, error) {
	return s.do(ctx, wire.ExecuteScript{Script: script, Args: args})
}

// ExecuteAsyncScript runs a script that reports its result through a
// callback.
func (s *Session) ExecuteAsyncScript(ctx context.Context, script string, args []any) (json.RawMessage, error) {
	return s.do(ctx, wire.ExecuteAsyncScript{Script: script, Args: args})
}

// Cookies.

// Cookies lists all cookies visible to the current page.
func (s *Session) Cookies(ctx context.Context) ([]wire.Cookie, error) {
	value, err := s.do(ctx, wire.GetAllCookies{})
	if err != nil {
		return nil, err
	}
	return wire.UnwrapSlice[wire.Cookie](value)
}

// Cookie reads a single cookie by name.
func (s *Session) Cookie(ctx context.Context, name string) (wire.Cookie, error) {
	return doUnwrap[wire.Cookie](ctx, s, wire.GetNamedCookie{Name: name})
}

// AddCookie sets a cookie.
func (s *Session) AddCookie(ctx context.Context, cookie wire.Cookie) error {
	_, err := s.do(ctx, wire.AddCookie{Cookie: cookie})
	return err
}

// DeleteCookie removes a single cookie by name.
func (s *Session) DeleteCookie(ctx context.Context, name string) error {
	_, err := s.do(ctx, wire.DeleteCookie{Name: name})
	return err
}

// DeleteAllCookies removes all cookies visible to the current page.
func (s *Session) DeleteAllCookies(ctx context.Context) error {
	_, err := s.do(ctx, wire.DeleteAllCookies{})
	return err
}

// Actions.

// PerformActions dispatches a W3C action sequence.
func (s *Session) PerformActions(ctx context.Context, actions wire.Actions) error {
	_, err := s.do(ctx, wire.PerformActions{Actions: actions})
	return err
}

// ReleaseActions releases all pressed keys and buttons.
func (s *Session) ReleaseActions(ctx context.Context) error {
	_, err := s.do(ctx, wire.ReleaseActions{})
	return err
}

// Alerts.

// DismissAlert dismisses the current user prompt.
func (s *Session) DismissAlert(ctx context.Context) error {
	_, err := s.do(ctx, wire.DismissAlert{})
	return err
}

// AcceptAlert accepts the current user prompt.
func (s *Session) AcceptAlert(ctx context.Context) error {
	_, err := s.do(ctx, wire.AcceptAlert{})
	return err
}

// AlertText reads the text of the current user prompt.
func (s *Session) AlertText(ctx context.Context) (string, error) {
	return doUnwrap[string](ctx, s, wire.GetAlertText{})
}

// SendAlertText types into the current prompt.
func (s *Session) SendAlertText(ctx context.Context, keys wire.TypingData) error {
	_, err := s.do(ctx, wire.SendAlertText{Keys: keys})
	return err
}

// Screenshot captures the viewport and returns decoded PNG bytes.
func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	value, err := s.do(ctx, wire.TakeScreenshot{})
	if err != nil {
		return nil, err
	}
	encoded, err := wire.Unwrap[string](value)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(encoded)
}

// elementFromValue extracts an element reference from a response
// value. Servers answer with one or both of the W3C magic key and the
// legacy ELEMENT key; the modern key wins when both are present.
func (s *Session) elementFromValue(value json.RawMessage) (*Element, error) {
	ref, err := wire.Unwrap[map[string]string](value)
	if err != nil {
		return nil, err
	}
	return s.elementFromRef(ref)
}

func (s *Session) elementsFromValue(value json.RawMessage) ([]*Element, error) {
	refs, err := wire.UnwrapSlice[map[string]string](value)
	if err != nil {
		return nil, err
	}
	elements := make([]*Element, len(refs))
	for i, ref := range refs {
		el, err := s.elementFromRef(ref)
		if err != nil {
			return nil, err
		}
		elements[i] = el
	}
	return elements, nil
}

func (s *Session) elementFromRef(ref map[string]string) (*Element, error) {
	if id, ok := ref[wire.WebElementKey]; ok {
		return &Element{id: wire.ElementID(id), session: s}, nil
	}
	if id, ok := ref["ELEMENT"]; ok {
		return &Element{id: wire.ElementID(id), session: s}, nil
	}
	return nil, errors.New("webwire: element id not found in response")
}
