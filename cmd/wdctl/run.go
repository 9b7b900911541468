// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/drayke/webwire/pkg/artifacts"
	"github.com/drayke/webwire/pkg/page"
	"github.com/drayke/webwire/pkg/session"
	"github.com/drayke/webwire/pkg/snapshot"
	"github.com/drayke/webwire/pkg/wire"
)

func runSource(ctx context.Context, cfg Config, sess *session.Session, pageURL string, save bool) error {
	source, err := sess.Source(ctx)
	if err != nil {
		return err
	}
	if !save {
		fmt.Println(source)
		return nil
	}

	store := artifacts.NewStore(cfg.ArtifactsDir)
	if err := store.Init(); err != nil {
		return err
	}
	path, err := store.WriteSource(artifactName(pageURL), source)
	if err != nil {
		return err
	}
	log.Printf("Saved page source to %s", path)
	return nil
}

func runLinks(ctx context.Context, sess *session.Session, filter string) error {
	source, err := sess.Source(ctx)
	if err != nil {
		return err
	}
	doc, err := page.Parse(source)
	if err != nil {
		return err
	}
	for _, link := range doc.Links() {
		if filter != "" && !strings.Contains(link.Href, filter) && !strings.Contains(link.Text, filter) {
			continue
		}
		fmt.Printf("%s\t%s\n", link.Href, link.Text)
	}
	return nil
}

func runText(ctx context.Context, sess *session.Session) error {
	source, err := sess.Source(ctx)
	if err != nil {
		return err
	}
	doc, err := page.Parse(source)
	if err != nil {
		return err
	}
	fmt.Println(doc.Text())
	return nil
}

func runShoot(ctx context.Context, cfg Config, sess *session.Session, selector string, width int, out string) error {
	var data []byte
	var err error
	if selector != "" {
		var el *session.Element
		el, err = sess.Find(ctx, wire.ByCSS(selector))
		if err != nil {
			return err
		}
		data, err = el.Screenshot(ctx)
	} else {
		data, err = sess.Screenshot(ctx)
	}
	if err != nil {
		return err
	}

	snap, err := snapshot.Decode(data)
	if err != nil {
		return err
	}
	if width > 0 {
		snap = snap.Scale(width, 0)
	}

	if out == "" {
		store := artifacts.NewStore(cfg.ArtifactsDir)
		if err := store.Init(); err != nil {
			return err
		}
		url, _ := sess.CurrentURL(ctx)
		out = store.ScreenshotPath(artifactName(url), "png")
	}
	if err := snap.Save(out); err != nil {
		return err
	}
	log.Printf("Saved screenshot to %s", out)
	return nil
}

func runCookies(ctx context.Context, sess *session.Session) error {
	cookies, err := sess.Cookies(ctx)
	if err != nil {
		return err
	}
	for _, c := range cookies {
		expiry := "session"
		if c.Expiry > 0 {
			expiry = time.Unix(c.Expiry, 0).UTC().Format(time.RFC3339)
		}
		fmt.Printf("%s=%s\tdomain=%s\tpath=%s\texpires=%s\n", c.Name, c.Value, c.Domain, c.Path, expiry)
	}
	return nil
}

// artifactName derives a filename-safe name from a page URL, falling
// back to "page" when the URL has no usable host.
func artifactName(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return "page"
	}
	name := strings.ReplaceAll(u.Host, ":", "-")
	return strings.ReplaceAll(name, ".", "-")
}
