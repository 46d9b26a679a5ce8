package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/yomu-engine/config"
	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	pginfra "github.com/oksasatya/yomu-engine/internal/infrastructure/postgres"
)

// seed inserts SEED_PROFILES empty profiles so achievement updates have targets.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.DatabaseURL, 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	profiles := pginfra.NewProfileRepository(pool)
	for i := 0; i < cfg.SeedProfiles; i++ {
		p := &entity.Profile{}
		if err := profiles.Create(ctx, p); err != nil {
			log.Fatalf("failed to seed profile: %v", err)
		}
		log.Printf("seeded profile id=%d", p.ID)
	}
}
