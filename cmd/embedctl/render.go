package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaykalam/testimonialstack/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <widget-id>",
	Short: "Fetch a widget and print its embed HTML fragment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		payload, err := client.RenderPayload(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("widget %s: %w", args[0], err)
		}
		html := render.Widget(*payload.Widget, payload.Testimonials)

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		}
		return os.WriteFile(out, []byte(html), 0o644)
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write the fragment to a file instead of stdout")
}
