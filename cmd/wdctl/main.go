// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// wdctl drives a remote WebDriver server from the command line: one
// session per invocation, one page action per command.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drayke/webwire/pkg/artifacts"
	"github.com/drayke/webwire/pkg/session"
	"github.com/drayke/webwire/pkg/transport"
	"github.com/drayke/webwire/pkg/wire"
)

func main() {
	var (
		configPath string
		server     string
		browser    string
	)

	root := &cobra.Command{
		Use:           "wdctl",
		Short:         "Drive a WebDriver server from the command line",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().StringVar(&server, "server", "", "WebDriver server URL")
	root.PersistentFlags().StringVarP(&browser, "browser", "b", "", "browser name for new sessions")

	prepare := func() (Config, *transport.Client, error) {
		cfg, err := loadConfig(configPath, server, browser)
		if err != nil {
			return Config{}, nil, err
		}
		client, err := transport.NewClient(cfg.Server)
		if err != nil {
			return Config{}, nil, err
		}
		return cfg, client, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Check server readiness",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()
			status, err := session.Status(ctx, client)
			if err != nil {
				return err
			}
			if status.Ready {
				fmt.Printf("ready: %s\n", status.Message)
				return nil
			}
			return fmt.Errorf("server not ready: %s", status.Message)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "title URL",
		Short: "Print a page's title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				title, err := sess.Title(ctx)
				if err != nil {
					return err
				}
				fmt.Println(title)
				return nil
			})
		},
	})

	sourceCmd := &cobra.Command{
		Use:   "source URL",
		Short: "Dump a page's source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			save, _ := cmd.Flags().GetBool("save")
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				return runSource(ctx, cfg, sess, args[0], save)
			})
		},
	}
	sourceCmd.Flags().BoolP("save", "s", false, "save to the artifacts dir instead of stdout")
	root.AddCommand(sourceCmd)

	linksCmd := &cobra.Command{
		Use:   "links URL",
		Short: "List the links on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				return runLinks(ctx, sess, filter)
			})
		},
	}
	linksCmd.Flags().StringP("filter", "f", "", "only links whose href or text contains this")
	root.AddCommand(linksCmd)

	root.AddCommand(&cobra.Command{
		Use:   "text URL",
		Short: "Print a page's visible text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				return runText(ctx, sess)
			})
		},
	})

	shootCmd := &cobra.Command{
		Use:   "shoot URL",
		Short: "Screenshot a page or element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, _ := cmd.Flags().GetString("selector")
			width, _ := cmd.Flags().GetInt("width")
			out, _ := cmd.Flags().GetString("out")
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				return runShoot(ctx, cfg, sess, selector, width, out)
			})
		},
	}
	shootCmd.Flags().StringP("selector", "S", "", "CSS selector; screenshot just that element")
	shootCmd.Flags().IntP("width", "w", 0, "scale output to this width, keeping aspect ratio")
	shootCmd.Flags().StringP("out", "o", "", "output path (default: timestamped file in the artifacts dir)")
	root.AddCommand(shootCmd)

	root.AddCommand(&cobra.Command{
		Use:   "exec URL SCRIPT",
		Short: "Run a script in a page and print the result",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			script := strings.Join(args[1:], " ")
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				result, err := sess.ExecuteScript(ctx, script, nil)
				if err != nil {
					return err
				}
				fmt.Println(string(result))
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "cookies URL",
		Short: "List the cookies a page sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := prepare()
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), cfg, client, args[0], func(ctx context.Context, sess *session.Session) error {
				return runCookies(ctx, sess)
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove saved screenshots and page dumps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, server, browser)
			if err != nil {
				return err
			}
			return artifacts.NewStore(cfg.ArtifactsDir).Flush()
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withSession opens a session, navigates to url, runs fn, and always
// tears the session down again.
func withSession(parent context.Context, cfg Config, client *transport.Client, url string, fn func(context.Context, *session.Session) error) error {
	ctx, cancel := context.WithTimeout(parent, cfg.Timeout)
	defer cancel()

	sess, err := session.Open(ctx, client, wire.NewCapabilities(cfg.Browser))
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(ctx); err != nil {
			log.Printf("Warning: failed to close session: %v", err)
		}
	}()

	if err := sess.Navigate(ctx, url); err != nil {
		return err
	}
	return fn(ctx, sess)
}
