// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// Version identifies this client in the User-Agent header.
const Version = "0.3.0"

// HeaderError reports a header value that cannot be encoded as a valid
// HTTP header field. Connection setup cannot proceed past it.
type HeaderError struct {
	Name  string
	Value string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("webwire: invalid value for header %s: %q", e.Name, e.Value)
}

// BuildHeaders constructs the fixed header set sent with every request
// on a connection. When the server URL embeds userinfo with both a
// username and a password, a Basic-Auth Authorization header is added;
// if either part is missing the header is omitted entirely.
func BuildHeaders(serverURL string) (http.Header, error) {
	headers := http.Header{}
	set := func(name, value string) error {
		if !httpguts.ValidHeaderFieldValue(value) {
			return &HeaderError{Name: name, Value: value}
		}
		headers.Set(name, value)
		return nil
	}

	if err := set("Accept", "application/json"); err != nil {
		return nil, err
	}
	if err := set("Content-Type", "application/json;charset=UTF-8"); err != nil {
		return nil, err
	}
	if err := set("User-Agent", fmt.Sprintf("webwire/%s (go)", Version)); err != nil {
		return nil, err
	}

	if u, err := url.Parse(serverURL); err == nil && u.User != nil {
		username := u.User.Username()
		password, hasPassword := u.User.Password()
		if username != "" && hasPassword {
			credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
			if err := set("Authorization", "Basic "+credentials); err != nil {
				return nil, err
			}
		}
	}

	if err := set("Connection", "keep-alive"); err != nil {
		return nil, err
	}
	return headers, nil
}
