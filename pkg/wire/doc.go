// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package wire translates typed W3C WebDriver operations into HTTP
// request descriptors and decodes raw response values back into typed
// results.
//
// The package is purely functional: every Command maps to exactly one
// (method, URL, body) triple, and the same Command and SessionID always
// produce the same RequestData. Nothing here performs I/O; the
// transport package executes the descriptors built here.
//
// Two historical wire dialects are deliberately supported at once.
// Session-creation bodies carry both the W3C "capabilities" key and the
// legacy "desiredCapabilities" key, and element references embed both
// the legacy "ELEMENT" key and the W3C magic key. Some servers require
// the legacy forms even when they understand the modern ones.
package wire
