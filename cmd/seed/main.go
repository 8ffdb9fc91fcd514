package main

import (
	"log"

	"github.com/hweilin/memberhub/cmd/seed/seed"
	"github.com/hweilin/memberhub/internal/config"
)

func main() {
	cfg := config.New()

	seeder, cleanup, err := seed.NewSeeder(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}
	defer cleanup()

	seeder.CreateAdmin()
	seeder.CreateSampleMembers()
}
