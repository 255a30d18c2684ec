package main

import (
	"github.com/joho/godotenv"

	"github.com/jaykalam/testimonialstack/internal/logger"
)

func main() {
	// Local .env is optional; flags and TESTIMONIALSTACK_* env vars win.
	_ = godotenv.Load()
	if err := logger.InitFromEnv(); err == nil {
		defer logger.Close()
	}
	Execute()
}
