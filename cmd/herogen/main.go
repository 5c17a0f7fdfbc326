// Package main provides the herogen command, which generates heroes and
// optionally stores them in PostgreSQL and Redis.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/herogen/internal/config"
	"github.com/cory-johannsen/herogen/internal/game/catalog"
	"github.com/cory-johannsen/herogen/internal/game/dice"
	"github.com/cory-johannsen/herogen/internal/game/hero"
	"github.com/cory-johannsen/herogen/internal/observability"
	"github.com/cory-johannsen/herogen/internal/scripting"
	"github.com/cory-johannsen/herogen/internal/storage/postgres"
	rediscache "github.com/cory-johannsen/herogen/internal/storage/redis"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and HEROGEN_ env vars")
	envFile := flag.String("env", ".env", "dotenv file loaded before configuration")
	name := flag.String("name", "", "hero name")
	gender := flag.String("gender", "male", "Male or Female")
	hair := flag.String("hair", "brown", "hair color")
	raceName := flag.String("race", "human", "race")
	klassName := flag.String("klass", "fighter", "class")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses generator.seed from config")
	count := flag.Int("count", 1, "number of heroes to generate")
	save := flag.Bool("save", false, "store generated heroes in PostgreSQL")
	cache := flag.Bool("cache", false, "store generated heroes in Redis")
	format := flag.String("format", "sheet", "output format: sheet or json")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("loading %s: %v", *envFile, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *format != "sheet" && *format != "json" {
		logger.Fatal("invalid format", zap.String("format", *format))
	}
	if *count < 1 {
		logger.Fatal("count must be >= 1", zap.Int("count", *count))
	}
	if *seed == 0 {
		*seed = cfg.Generator.Seed
	}

	eval := scripting.NewEvaluator(cfg.Generator.ScriptInstructionLimit, logger)
	cat, err := catalog.Load(cfg.Generator.ContentDir, eval)
	if err != nil {
		logger.Fatal("loading content", zap.String("dir", cfg.Generator.ContentDir), zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("occupations", cat.Occupations.Len()),
		zap.Int("kits", len(cat.Kits.IDs())),
	)
	assembler := hero.NewAssembler(cat.Occupations, cat.Occupations, cat.Kits, eval, logger)

	req, err := hero.ParseRequest(*name, *gender, *hair, *raceName, *klassName)
	if err != nil {
		logger.Fatal("invalid request", zap.Error(err))
	}

	ctx := context.Background()
	heroes, err := generate(ctx, assembler, req, *seed, *count, cfg.Generator.BatchWorkers, logger)
	if err != nil {
		logger.Fatal("generating heroes", zap.Error(err))
	}

	if *save {
		if err := saveHeroes(ctx, cfg.Database, heroes); err != nil {
			logger.Fatal("saving heroes", zap.Error(err))
		}
		logger.Info("heroes saved", zap.Int("count", len(heroes)))
	}
	if *cache {
		if err := cacheHeroes(ctx, cfg.Redis, heroes); err != nil {
			logger.Fatal("caching heroes", zap.Error(err))
		}
		logger.Info("heroes cached", zap.Int("count", len(heroes)), zap.Duration("ttl", cfg.Redis.TTL))
	}

	if err := write(os.Stdout, *format, heroes); err != nil {
		logger.Fatal("writing output", zap.Error(err))
	}
	logger.Debug("done", zap.Duration("elapsed", time.Since(start)))
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefaults()
	}
	return config.Load(path)
}

// generate produces one hero from a logged source, or a batch from per-index
// streams of seed. An unseeded batch picks a seed and logs it for replay.
func generate(ctx context.Context, a *hero.Assembler, req hero.Request, seed uint64, count, workers int, logger *zap.Logger) ([]hero.Hero, error) {
	if count == 1 {
		var src dice.Source = dice.NewCryptoSource()
		if seed != 0 {
			src = dice.NewSeededSource(seed)
		}
		h, err := a.Generate(req, dice.NewLoggedRoller(src, logger))
		if err != nil {
			return nil, err
		}
		return []hero.Hero{h}, nil
	}

	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("generating batch", zap.Uint64("seed", seed), zap.Int("count", count), zap.Int("workers", workers))
	reqs := make([]hero.Request, count)
	for i := range reqs {
		reqs[i] = req
	}
	return a.GenerateBatch(ctx, reqs, seed, workers)
}

func saveHeroes(ctx context.Context, cfg config.DatabaseConfig, heroes []hero.Hero) error {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	return postgres.NewHeroRepository(pool.DB()).CreateAll(ctx, heroes)
}

func cacheHeroes(ctx context.Context, cfg config.RedisConfig, heroes []hero.Hero) error {
	client, err := rediscache.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	c := rediscache.NewHeroCache(client, cfg.TTL)
	for _, h := range heroes {
		if err := c.Put(ctx, h); err != nil {
			return fmt.Errorf("caching %s: %w", h.ID(), err)
		}
	}
	return nil
}

func write(w *os.File, format string, heroes []hero.Hero) error {
	if format == "json" {
		out := make([]map[string]string, len(heroes))
		for i, h := range heroes {
			out[i] = h.Attributes()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, h := range heroes {
		if _, err := fmt.Fprintln(w, RenderSheet(h)); err != nil {
			return err
		}
	}
	return nil
}
