package main

import (
	"github.com/joho/godotenv"

	"github.com/trexfeathers/WOPI/internal/cli"
)

func main() {
	// A local .env may carry RADAR_* settings; it is optional.
	_ = godotenv.Load()
	cli.Execute()
}
