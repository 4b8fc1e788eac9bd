package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/commands"
)

func main() {
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
