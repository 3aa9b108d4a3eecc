package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/ability-dispatch/internal/assets"
	"github.com/KirkDiggler/ability-dispatch/internal/config"
	"github.com/KirkDiggler/ability-dispatch/internal/controller"
	"github.com/KirkDiggler/ability-dispatch/internal/logger"
	"github.com/KirkDiggler/ability-dispatch/internal/pawn"
	"github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings"
	"github.com/KirkDiggler/ability-dispatch/internal/services/ability"
	"github.com/KirkDiggler/ability-dispatch/internal/services/input"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if envErr != nil {
		lg.Debug("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	repo, redisClient := openRepository(ctx, cfg, lg)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				lg.Warn("error closing Redis connection", zap.Error(err))
			}
		}()
	}

	asset, err := assets.LoadFile(cfg.Bindings.AssetPath)
	if err != nil {
		lg.Fatal("failed to load bindings asset", zap.String("path", cfg.Bindings.AssetPath), zap.Error(err))
	}
	if err := assets.Seed(ctx, repo, asset); err != nil {
		lg.Fatal("failed to seed binding sets", zap.Error(err))
	}
	lg.Info("binding sets loaded",
		zap.String("path", cfg.Bindings.AssetPath),
		zap.Int("sets", len(asset.BindingSets)),
		zap.Int("mapping_contexts", len(asset.MappingContexts)))

	pc := controller.New(&controller.Config{
		Inputs:   input.NewBus(&input.BusConfig{Logger: lg.Named("input")}),
		Bindings: repo,
		Logger:   lg.Named("controller"),
	})
	for _, mc := range asset.MappingContexts {
		if err := pc.SetupInput(ctx, mc); err != nil {
			lg.Fatal("failed to add mapping context", zap.String("context", mc.Name), zap.Error(err))
		}
	}

	character := pawn.NewCharacter(&pawn.CharacterConfig{
		ID:           cfg.Player.PawnID,
		BindingSetID: cfg.Bindings.SetID,
		Abilities: ability.NewComponent(&ability.ComponentConfig{
			OwnerID: cfg.Player.PawnID,
			Logger:  lg.Named("abilities"),
		}),
	})

	// A failed possession leaves the pawn unbound; keys are still read
	if err := pc.OnPossess(ctx, character); err != nil {
		lg.Warn("possession did not bind", zap.Error(err))
	}

	fmt.Println("Controller is running. Type a key name, :possess <set>, :unpossess or :quit.")

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Shutting down...")
			pc.OnUnpossess(context.Background())
			return
		case line, ok := <-lines:
			if !ok {
				pc.OnUnpossess(ctx)
				return
			}
			if quit := handleLine(ctx, pc, character, line, lg); quit {
				pc.OnUnpossess(ctx)
				return
			}
		}
	}
}

func openRepository(ctx context.Context, cfg *config.Config, lg *zap.Logger) (bindings.Repository, *redis.Client) {
	if cfg.Redis.URL == "" {
		lg.Info("no REDIS_URL found, using in-memory binding store")
		return bindings.NewInMemoryRepository(), nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		lg.Warn("failed to parse Redis URL, falling back to in-memory binding store", zap.Error(err))
		return bindings.NewInMemoryRepository(), nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		lg.Warn("failed to connect to Redis, falling back to in-memory binding store", zap.Error(err))
		return bindings.NewInMemoryRepository(), nil
	}

	lg.Info("using Redis for binding sets", zap.String("addr", opts.Addr))
	return bindings.NewRedis(client), client
}

func readLines(f *os.File, out chan<- string) {
	defer close(out)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		out <- strings.TrimSpace(scanner.Text())
	}
}

// handleLine runs one console command and reports whether to quit
func handleLine(ctx context.Context, pc *controller.Controller, character *pawn.Character, line string, lg *zap.Logger) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case ":quit":
		return true
	case ":unpossess":
		pc.OnUnpossess(ctx)
	case ":possess":
		if len(fields) > 1 {
			character.SetBindingSetID(fields[1])
		}
		if err := pc.OnPossess(ctx, character); err != nil {
			lg.Warn("possession did not bind", zap.Error(err))
		}
	default:
		in, err := pc.PressKey(ctx, fields[0])
		if err != nil {
			lg.Warn("key ignored", zap.String("key", fields[0]), zap.Error(err))
			return false
		}
		lg.Debug("key pressed", zap.String("key", fields[0]), zap.String("input", string(in)))
	}
	return false
}
