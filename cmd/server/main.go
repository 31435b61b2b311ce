package main

import (
	"log"
	"roulette_patterns/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
