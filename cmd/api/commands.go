// ABOUTME: Cobra command tree for the service binary
// ABOUTME: serve runs the HTTP API; resolve and feed query the pipeline once

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"twitch-vod-rss/infrastructure/rss"
	"twitch-vod-rss/pkg/config"
	"twitch-vod-rss/pkg/utils/duration"
)

const banner = `
 _____          _ _       _      __     _____  ____    ____  ____ ____
|_   _|_      _(_) |_ ___| |__   \ \   / / _ \|  _ \  |  _ \/ ___/ ___|
  | | \ \ /\ / / | __/ __| '_ \   \ \ / / | | | | | | | |_) \___ \___ \
  | |  \ V  V /| | || (__| | | |   \ V /| |_| | |_| | |  _ < ___) |__) |
  |_|   \_/\_/ |_|\__\___|_| |_|    \_/  \___/|____/  |_| \_\____/____/
`

// writeBanner prints the startup banner, which carries its own trailing newline
func writeBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// loadConfig reads and validates configuration from the environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:           "twitch-vod-rss",
		Short:         "Publish Twitch channel VODs as RSS feeds",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}
	root.PersistentFlags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	root.AddCommand(newServeCmd(&port), newResolveCmd(), newFeedCmd())
	return root
}

func newServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *port)
		},
	}
}

func runServe(cmd *cobra.Command, port string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Server.Port = port
	}

	a, err := newApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	writeBanner(cmd.OutOrStdout())

	ln, err := net.Listen("tcp", ":"+cfg.Server.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Server.Port, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, a, ln)
}

// serve runs the HTTP server on ln until ctx is done, then shuts it down
func serve(ctx context.Context, a *app, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", map[string]interface{}{
			"address":        ln.Addr().String(),
			"log_backend":    a.cfg.Log.Backend,
			"upstream_rps":   a.cfg.Upstream.RateLimit,
			"upstream_burst": a.cfg.Upstream.RateBurst,
		})
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	a.logger.Info("Server stopped", nil)
	return nil
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <handle>",
		Short: "Print the numeric user id of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.feeds.ResolveID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
}

func newFeedCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "feed <handle>",
		Short: "Print the RSS feed of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if list {
				return printVideos(cmd, a, args[0])
			}

			f, err := a.feeds.ChannelFeed(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc, err := rss.Encode(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print a table of videos instead of RSS")
	return cmd
}

// printVideos writes one row per video: id, creation date, length and title
func printVideos(cmd *cobra.Command, a *app, handle string) error {
	userID, err := a.resolver.Resolve(cmd.Context(), handle)
	if err != nil {
		return err
	}
	videos, err := a.lister.List(cmd.Context(), userID)
	if err != nil {
		return err
	}

	var total time.Duration
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tLENGTH\tTITLE")
	for _, v := range videos {
		total += v.Duration
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.CreatedAt.UTC().Format(time.DateOnly), duration.Clock(v.Duration), v.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%d listed, %s in total\n", len(videos), duration.HumanReadable(total))
	return err
}
