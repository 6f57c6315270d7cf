package main

import (
	"context"
	"log"

	"github.com/folioforge/portfolio-backend/config"
	"github.com/folioforge/portfolio-backend/internal/bootstrap"
	"github.com/folioforge/portfolio-backend/internal/enrich"
	"github.com/folioforge/portfolio-backend/internal/projects/repository"
	"github.com/folioforge/portfolio-backend/internal/projects/service"
	"github.com/folioforge/portfolio-backend/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	sessions, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
	})
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer sessions.Close()

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	log.Printf("storage backend: %s", cfg.Storage.Backend)

	store := session.NewStore(sessions, cfg.Session.TTL)
	gate := session.NewGate(store, cfg.Session.AdminPasswordHash, cfg.IsProduction())

	llm := enrich.NewGemini(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.Timeout)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "portfolio-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Projects:       service.NewProjectService(repo),
		Gate:           gate,
		Enrich:         enrich.NewService(llm),
		Sessions:       sessions,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func openRepository(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	switch cfg.Storage.Backend {
	case "file":
		return repository.NewFile(cfg.Storage.ProjectsFile), nil
	case "firestore":
		if cfg.Storage.FirebaseCredentials != "" {
			client, err := bootstrap.OpenFirestoreServiceAccount(ctx, cfg.Storage.FirestoreProjectID, cfg.Storage.FirebaseCredentials)
			if err != nil {
				return nil, err
			}
			return repository.NewFirestore(client), nil
		}
		client, err := bootstrap.OpenFirestoreAmbient(ctx, cfg.Storage.FirestoreProjectID)
		if err != nil {
			return nil, err
		}
		return repository.NewFirestore(client), nil
	default:
		return repository.NewMemory(repository.SeedProjects()...), nil
	}
}
