// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"time"
)

// WebElementKey is the W3C web element identifier, used as the JSON key
// for element references in modern responses and request bodies.
const WebElementKey = "element-6066-11e4-a52e-4f735466cecf"

// SessionID identifies a live automation session. It is created by the
// server on session start and embedded in nearly every URL path.
type SessionID string

func (s SessionID) String() string { return string(s) }

// ElementID identifies a located DOM node within a session.
type ElementID string

func (e ElementID) String() string { return string(e) }

// WireRef returns the element reference object embedded in request
// bodies. Both the legacy "ELEMENT" key and the W3C magic key are
// always present and carry the same identifier; legacy servers read
// the former and ignore the latter.
func (e ElementID) WireRef() map[string]string {
	return map[string]string{
		"ELEMENT":     string(e),
		WebElementKey: string(e),
	}
}

// WindowHandle identifies a browser window or tab.
type WindowHandle string

func (w WindowHandle) String() string { return string(w) }

// Cookie is a browser cookie as exchanged with the server. Optional
// fields are omitted from the wire form when unset.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	// Expiry is seconds since the Unix epoch. Zero means a session
	// cookie.
	Expiry int64 `json:"expiry,omitempty"`
}

// TimeoutConfiguration holds the three named WebDriver timeouts. A nil
// field is left unchanged on the server; set fields are sent as
// millisecond integers. The configuration serializes directly as the
// request body with no wrapper key.
type TimeoutConfiguration struct {
	Script   *time.Duration
	PageLoad *time.Duration
	Implicit *time.Duration
}

// NewTimeoutConfiguration sets all three timeouts at once.
func NewTimeoutConfiguration(script, pageLoad, implicit time.Duration) TimeoutConfiguration {
	return TimeoutConfiguration{Script: &script, PageLoad: &pageLoad, Implicit: &implicit}
}

func (t TimeoutConfiguration) MarshalJSON() ([]byte, error) {
	ms := make(map[string]int64, 3)
	if t.Script != nil {
		ms["script"] = t.Script.Milliseconds()
	}
	if t.PageLoad != nil {
		ms["pageLoad"] = t.PageLoad.Milliseconds()
	}
	if t.Implicit != nil {
		ms["implicit"] = t.Implicit.Milliseconds()
	}
	return json.Marshal(ms)
}

func (t *TimeoutConfiguration) UnmarshalJSON(data []byte) error {
	var ms struct {
		Script   *int64 `json:"script"`
		PageLoad *int64 `json:"pageLoad"`
		Implicit *int64 `json:"implicit"`
	}
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*t = TimeoutConfiguration{}
	if ms.Script != nil {
		d := time.Duration(*ms.Script) * time.Millisecond
		t.Script = &d
	}
	if ms.PageLoad != nil {
		d := time.Duration(*ms.PageLoad) * time.Millisecond
		t.PageLoad = &d
	}
	if ms.Implicit != nil {
		d := time.Duration(*ms.Implicit) * time.Millisecond
		t.Implicit = &d
	}
	return nil
}

// OptionRect is a window rectangle where each field may be
// independently unset. Unset fields are absent from the wire form, not
// null, so the server leaves the corresponding dimension alone.
type OptionRect struct {
	X      *int `json:"x,omitempty"`
	Y      *int `json:"y,omitempty"`
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}

// WithPos sets the x/y position.
func (r OptionRect) WithPos(x, y int) OptionRect {
	r.X = &x
	r.Y = &y
	return r
}

// WithSize sets the width/height.
func (r OptionRect) WithSize(width, height int) OptionRect {
	r.Width = &width
	r.Height = &height
	return r
}

// Rect is the fully-populated rectangle shape returned by window-rect
// and element-rect queries.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
