// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = SessionID("abc123")

func bodyJSON(t *testing.T, r RequestData) string {
	t.Helper()
	if r.Body == nil {
		return ""
	}
	data, err := json.Marshal(r.Body)
	require.NoError(t, err)
	return string(data)
}

// One row per command variant. An empty body column means the request
// is sent without a body; "{}" is the explicit empty-object body the
// protocol requires on payload-less state changes.
func TestCommandRequests(t *testing.T) {
	elem := ElementID("elem-7")
	tests := []struct {
		name   string
		cmd    Command
		method string
		url    string
		body   string
	}{
		{
			"new session", NewSession{Caps: Capabilities{"browserName": "firefox"}},
			http.MethodPost, "/session",
			`{"capabilities":{"alwaysMatch":{"browserName":"firefox"}},"desiredCapabilities":{"browserName":"firefox"}}`,
		},
		{"delete session", DeleteSession{}, http.MethodDelete, "/session/abc123", ""},
		{"status", Status{}, http.MethodGet, "/status", ""},
		{"get timeouts", GetTimeouts{}, http.MethodGet, "/session/abc123/timeouts", ""},
		{
			"set timeouts", SetTimeouts{Config: NewTimeoutConfiguration(50*time.Second, 20*time.Second, 10*time.Second)},
			http.MethodPost, "/session/abc123/timeouts",
			`{"implicit":10000,"pageLoad":20000,"script":50000}`,
		},
		{
			"navigate", NavigateTo{URL: "https://example.com/"},
			http.MethodPost, "/session/abc123/url", `{"url":"https://example.com/"}`,
		},
		{"get current url", GetCurrentURL{}, http.MethodGet, "/session/abc123/url", ""},
		{"back", Back{}, http.MethodPost, "/session/abc123/back", "{}"},
		{"forward", Forward{}, http.MethodPost, "/session/abc123/forward", "{}"},
		{"refresh", Refresh{}, http.MethodPost, "/session/abc123/refresh", "{}"},
		{"get title", GetTitle{}, http.MethodGet, "/session/abc123/title", ""},
		{"get window handle", GetWindowHandle{}, http.MethodGet, "/session/abc123/window", ""},
		{"close window", CloseWindow{}, http.MethodDelete, "/session/abc123/window", ""},
		{
			"switch to window", SwitchToWindow{Handle: "win-1"},
			http.MethodPost, "/session/abc123/window", `{"handle":"win-1"}`,
		},
		{"get window handles", GetWindowHandles{}, http.MethodGet, "/session/abc123/window/handles", ""},
		{
			"switch to default frame", SwitchToFrameDefault{},
			http.MethodPost, "/session/abc123/frame", `{"id":null}`,
		},
		{
			"switch to frame number", SwitchToFrameNumber{Number: 2},
			http.MethodPost, "/session/abc123/frame", `{"id":2}`,
		},
		{
			"switch to frame element", SwitchToFrameElement{ID: elem},
			http.MethodPost, "/session/abc123/frame",
			`{"id":{"ELEMENT":"elem-7","element-6066-11e4-a52e-4f735466cecf":"elem-7"}}`,
		},
		{"switch to parent frame", SwitchToParentFrame{}, http.MethodPost, "/session/abc123/frame/parent", "{}"},
		{"get window rect", GetWindowRect{}, http.MethodGet, "/session/abc123/window/rect", ""},
		{
			"set window rect size only", SetWindowRect{Rect: OptionRect{}.WithSize(1920, 1080)},
			http.MethodPost, "/session/abc123/window/rect", `{"width":1920,"height":1080}`,
		},
		{
			"set window rect full", SetWindowRect{Rect: OptionRect{}.WithPos(0, 0).WithSize(800, 600)},
			http.MethodPost, "/session/abc123/window/rect", `{"x":0,"y":0,"width":800,"height":600}`,
		},
		{"maximize", MaximizeWindow{}, http.MethodPost, "/session/abc123/window/maximize", "{}"},
		{"minimize", MinimizeWindow{}, http.MethodPost, "/session/abc123/window/minimize", "{}"},
		{"fullscreen", FullscreenWindow{}, http.MethodPost, "/session/abc123/window/fullscreen", "{}"},
		{"get active element", GetActiveElement{}, http.MethodGet, "/session/abc123/element/active", ""},
		{
			"find element", FindElement{By: ByCSS("#login")},
			http.MethodPost, "/session/abc123/element",
			`{"using":"css selector","value":"#login"}`,
		},
		{
			"find elements", FindElements{By: ByXPath("//a")},
			http.MethodPost, "/session/abc123/elements",
			`{"using":"xpath","value":"//a"}`,
		},
		{
			"find element from element", FindElementFromElement{ID: elem, By: ByTag("input")},
			http.MethodPost, "/session/abc123/element/elem-7/element",
			`{"using":"css selector","value":"input"}`,
		},
		{
			"find elements from element", FindElementsFromElement{ID: elem, By: ByClassName("row")},
			http.MethodPost, "/session/abc123/element/elem-7/elements",
			`{"using":"css selector","value":".row"}`,
		},
		{"is selected", IsElementSelected{ID: elem}, http.MethodGet, "/session/abc123/element/elem-7/selected", ""},
		{
			"get attribute", GetElementAttribute{ID: elem, Name: "href"},
			http.MethodGet, "/session/abc123/element/elem-7/attribute/href", "",
		},
		{
			"get property", GetElementProperty{ID: elem, Name: "value"},
			http.MethodGet, "/session/abc123/element/elem-7/property/value", "",
		},
		{
			"get css value", GetElementCSSValue{ID: elem, Name: "color"},
			http.MethodGet, "/session/abc123/element/elem-7/css/color", "",
		},
		{"get text", GetElementText{ID: elem}, http.MethodGet, "/session/abc123/element/elem-7/text", ""},
		{"get tag name", GetElementTagName{ID: elem}, http.MethodGet, "/session/abc123/element/elem-7/name", ""},
		{"get element rect", GetElementRect{ID: elem}, http.MethodGet, "/session/abc123/element/elem-7/rect", ""},
		{"is enabled", IsElementEnabled{ID: elem}, http.MethodGet, "/session/abc123/element/elem-7/enabled", ""},
		{"click", ElementClick{ID: elem}, http.MethodPost, "/session/abc123/element/elem-7/click", "{}"},
		{"clear", ElementClear{ID: elem}, http.MethodPost, "/session/abc123/element/elem-7/clear", "{}"},
		{
			"send keys", ElementSendKeys{ID: elem, Keys: Type("hi")},
			http.MethodPost, "/session/abc123/element/elem-7/value",
			`{"text":"hi","value":["h","i"]}`,
		},
		{"get source", GetPageSource{}, http.MethodGet, "/session/abc123/source", ""},
		{
			"execute script", ExecuteScript{Script: "return 1;", Args: []any{1, "two"}},
			http.MethodPost, "/session/abc123/execute/sync",
			`{"args":[1,"two"],"script":"return 1;"}`,
		},
		{
			"execute script nil args", ExecuteScript{Script: "return 1;"},
			http.MethodPost, "/session/abc123/execute/sync",
			`{"args":[],"script":"return 1;"}`,
		},
		{
			"execute async script", ExecuteAsyncScript{Script: "done();"},
			http.MethodPost, "/session/abc123/execute/async",
			`{"args":[],"script":"done();"}`,
		},
		{"get all cookies", GetAllCookies{}, http.MethodGet, "/session/abc123/cookie", ""},
		{"get named cookie", GetNamedCookie{Name: "sid"}, http.MethodGet, "/session/abc123/cookie/sid", ""},
		{
			"add cookie", AddCookie{Cookie: Cookie{Name: "sid", Value: "42", Domain: "example.com"}},
			http.MethodPost, "/session/abc123/cookie",
			`{"cookie":{"name":"sid","value":"42","domain":"example.com"}}`,
		},
		{"delete cookie", DeleteCookie{Name: "sid"}, http.MethodDelete, "/session/abc123/cookie/sid", ""},
		{"delete all cookies", DeleteAllCookies{}, http.MethodDelete, "/session/abc123/cookie", ""},
		{
			"perform actions", PerformActions{Actions: Actions{map[string]any{"id": "kb", "type": "key"}}},
			http.MethodPost, "/session/abc123/actions",
			`{"actions":[{"id":"kb","type":"key"}]}`,
		},
		{
			"perform actions nil", PerformActions{},
			http.MethodPost, "/session/abc123/actions", `{"actions":[]}`,
		},
		{"release actions", ReleaseActions{}, http.MethodDelete, "/session/abc123/actions", ""},
		{"dismiss alert", DismissAlert{}, http.MethodPost, "/session/abc123/alert/dismiss", "{}"},
		{"accept alert", AcceptAlert{}, http.MethodPost, "/session/abc123/alert/accept", "{}"},
		{"get alert text", GetAlertText{}, http.MethodGet, "/session/abc123/alert/text", ""},
		{
			"send alert text", SendAlertText{Keys: Type("ok")},
			http.MethodPost, "/session/abc123/alert/text",
			`{"text":"ok","value":["o","k"]}`,
		},
		{"screenshot", TakeScreenshot{}, http.MethodGet, "/session/abc123/screenshot", ""},
		{
			"element screenshot", TakeElementScreenshot{ID: elem},
			http.MethodGet, "/session/abc123/element/elem-7/screenshot", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.cmd.Request(testSession)
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.url, req.URL)
			assert.Equal(t, tt.body, bodyJSON(t, req))
		})
	}
}

// The same command and session must always produce byte-identical
// request data.
func TestCommandRequestsDeterministic(t *testing.T) {
	cmds := []Command{
		NewSession{Caps: Capabilities{"browserName": "firefox", "acceptInsecureCerts": true}},
		SwitchToFrameElement{ID: "elem-7"},
		FindElement{By: ByID("login")},
		ElementSendKeys{ID: "elem-7", Keys: Type("abc", KeyEnter)},
		SetWindowRect{Rect: OptionRect{}.WithSize(100, 200)},
	}
	for _, cmd := range cmds {
		first := cmd.Request(testSession)
		second := cmd.Request(testSession)
		assert.Equal(t, first.Method, second.Method)
		assert.Equal(t, first.URL, second.URL)
		assert.Equal(t, bodyJSON(t, first), bodyJSON(t, second))
	}
}

func TestFrameElementBodyCarriesBothKeys(t *testing.T) {
	req := SwitchToFrameElement{ID: "frame-elem"}.Request(testSession)
	data, err := json.Marshal(req.Body)
	require.NoError(t, err)

	var body struct {
		ID map[string]string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "frame-elem", body.ID["ELEMENT"])
	assert.Equal(t, "frame-elem", body.ID[WebElementKey])
	assert.Len(t, body.ID, 2)
}

func TestSendKeysSpecialCharacters(t *testing.T) {
	keys := Type("a", KeyEnter)
	req := ElementSendKeys{ID: "elem-7", Keys: keys}.Request(testSession)
	data, err := json.Marshal(req.Body)
	require.NoError(t, err)

	var body struct {
		Text  string   `json:"text"`
		Value []string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "a\uE007", body.Text)
	assert.Equal(t, []string{"a", "\uE007"}, body.Value)
}
