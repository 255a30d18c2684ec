package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jaykalam/testimonialstack/internal/cache"
	web "github.com/jaykalam/testimonialstack/internal/web"
)

// All linker flags will be set by release infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "embedctl",
	Short:         "Render and prerender TestimonialStack embed widgets.",
	Long:          `embedctl fetches widget configurations from a TestimonialStack backend and produces the same embed fragments the browser script would, for previews, server-side rendering and static host pages.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("origin", web.DefaultOrigin, "backend origin serving the widget API")
	rootCmd.PersistentFlags().Duration("ttl", web.DefaultTTL, "payload cache time-to-live")
	rootCmd.PersistentFlags().String("cache-sock", "", "cache daemon socket; empty uses a process-local cache")

	_ = viper.BindPFlag("origin", rootCmd.PersistentFlags().Lookup("origin"))
	_ = viper.BindPFlag("ttl", rootCmd.PersistentFlags().Lookup("ttl"))
	_ = viper.BindPFlag("cache-sock", rootCmd.PersistentFlags().Lookup("cache-sock"))

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(prerenderCmd)
	rootCmd.AddCommand(snippetCmd)
}

// initConfig wires TESTIMONIALSTACK_* environment variables under the flags.
func initConfig() {
	viper.SetEnvPrefix("TESTIMONIALSTACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newClient builds the widget client from the resolved configuration. When a
// cache daemon socket is configured the payload cache is shared across
// processes; otherwise each invocation gets its own in-memory cache.
func newClient() *web.Client {
	ttl := viper.GetDuration("ttl")
	var kv cache.KV
	if sock := viper.GetString("cache-sock"); sock != "" {
		kv = cache.NewClient(sock)
	} else {
		kv = cache.NewMemory(ttl)
	}
	return web.NewClient(viper.GetString("origin"), kv, ttl)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
