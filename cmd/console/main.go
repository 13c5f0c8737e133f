package main

import (
	"context"
	"log"

	"masterfile/internal/platform/config"
	"masterfile/internal/ui"
)

func main() {
	cfg := config.Load()

	if err := ui.Run(context.Background(), cfg); err != nil {
		log.Fatalf("console failed: %v", err)
	}
}
