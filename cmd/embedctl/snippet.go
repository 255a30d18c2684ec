package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	web "github.com/jaykalam/testimonialstack/internal/web"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet <widget-id>",
	Short: "Print the copy-paste embed snippet for a widget.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		widgetID := args[0]
		origin := viper.GetString("origin")
		if origin == "" {
			origin = web.DefaultOrigin
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"<div id=\"%s%s\"></div>\n<script src=\"%s/embed.js\" data-widget-id=\"%s\" async></script>\n",
			web.MountPrefix, widgetID, origin, widgetID)
	},
}
