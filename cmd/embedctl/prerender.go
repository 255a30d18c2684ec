package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	web "github.com/jaykalam/testimonialstack/internal/web"
)

var prerenderCmd = &cobra.Command{
	Use:   "prerender <file-or-url>...",
	Short: "Inject rendered widgets into host pages.",
	Long: `Scans HTML pages for widget mount points (elements whose id starts with
"` + web.MountPrefix + `") and replaces their content with the rendered embed
fragment. Local files are rewritten in place unless --output is given; URLs
are fetched and the result printed. With --watch, files are rescanned whenever
they change on disk, so widgets added to a page after the first pass are
picked up.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := web.NewScanner(newClient())
		out, _ := cmd.Flags().GetString("output")
		watch, _ := cmd.Flags().GetBool("watch")

		if watch {
			return watchFiles(cmd.Context(), scanner, args)
		}
		if out != "" && len(args) > 1 {
			return errors.New("--output requires a single target")
		}

		for _, target := range args {
			if isURL(target) {
				html, n, err := scanner.ScanURL(cmd.Context(), target)
				if err != nil {
					return fmt.Errorf("prerender %s: %w", target, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d widgets rendered\n", target, n)
				if out != "" {
					return os.WriteFile(out, []byte(html), 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), html)
				continue
			}
			n, err := scanner.ScanFile(cmd.Context(), target, out)
			if err != nil {
				return fmt.Errorf("prerender %s: %w", target, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d widgets rendered\n", target, n)
		}
		return nil
	},
}

func init() {
	prerenderCmd.Flags().StringP("output", "o", "", "write the result to a file (single target only)")
	prerenderCmd.Flags().Bool("watch", false, "keep watching local files and rescan on change")
}

func watchFiles(parent context.Context, scanner *web.Scanner, args []string) error {
	for _, a := range args {
		if isURL(a) {
			return fmt.Errorf("--watch only supports local files, got %s", a)
		}
	}
	w, err := web.NewFileWatcher(scanner, args...)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()
	fmt.Fprintf(os.Stderr, "watching %d files, press Ctrl+C to stop\n", len(args))
	<-ctx.Done()
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
