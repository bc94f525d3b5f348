package main

import (
	"log"

	"lyceum.by/newsportal/internal/bootstrap"
	"lyceum.by/newsportal/internal/config"
	"lyceum.by/newsportal/internal/server"
	"lyceum.by/newsportal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedSections(db); err != nil {
		log.Fatalf("failed to seed sections: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	srv, err := server.NewServer(cfg, db)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
