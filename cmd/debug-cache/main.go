package main

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/golos-labs/golos-bot/cache"
	"github.com/golos-labs/golos-bot/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal error loading config: %v", err)
	}

	db, err := cache.New(&cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	if db == nil {
		log.Fatal("No cache configured (set cache.addr or GOLOS_REDIS_ADDR)")
	}
	defer func() { _ = db.Close() }()

	offset, err := db.LoadOffset(context.Background())
	if err != nil {
		log.Printf("Failed to load update offset: %v", err)
	} else {
		fmt.Printf("update offset: %d\n", offset)
	}

	counts, err := db.RunCounts()
	if err != nil {
		log.Fatalf("Failed to load run counters: %v", err)
	}
	if len(counts) == 0 {
		fmt.Println("no run counters recorded")
		return
	}

	fmt.Println("\n--- Run counters ---")
	outcomes := make([]string, 0, len(counts))
	for outcome := range counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	for _, outcome := range outcomes {
		fmt.Printf("%-24s %d\n", outcome, counts[outcome])
	}
}
