package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	sets, err := bindings.NewRedis(client).List(ctx)
	if err != nil {
		log.Fatalf("Failed to list binding sets: %v", err)
	}

	fmt.Printf("Found %d binding sets:\n", len(sets))
	for _, set := range sets {
		fmt.Printf("  %s (%s), updated %s\n", set.ID, set.Name, set.UpdatedAt.Format("2006-01-02 15:04:05"))
		for _, b := range set.Bindings {
			fmt.Printf("    %-16s -> %s\n", b.Input, b.Ability)
		}
	}
}
