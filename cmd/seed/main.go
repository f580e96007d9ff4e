package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"gatepass/internal/config"
	"gatepass/internal/db"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/repository"
	"gatepass/internal/service"
)

// SeedFile is the layout of the seed YAML file.
type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

// SeedUser describes one account to provision.
type SeedUser struct {
	Username    string `yaml:"username"`
	Role        string `yaml:"role"`
	Password    string `yaml:"password"`
	PasswordEnv string `yaml:"password_env"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	path := cfg.SeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	users, err := loadSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d users from %s", len(users), path)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	credentials := service.NewCredentialService(repository.NewUserRepository(gormDB))
	created, existing, err := seedUsers(context.Background(), credentials, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", existing)
}

// loadSeedFile parses the seed YAML at path.
func loadSeedFile(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Users, nil
}

// seedUsers registers each user. Users that already exist are left untouched.
func seedUsers(ctx context.Context, credentials service.CredentialService, users []SeedUser) (created int, existing int, err error) {
	for _, u := range users {
		role, err := model.ParseRole(u.Role)
		if err != nil {
			return created, existing, fmt.Errorf("user %s: %w", u.Username, err)
		}

		password := u.Password
		if u.PasswordEnv != "" {
			if v := os.Getenv(u.PasswordEnv); v != "" {
				password = v
			}
		}

		_, err = credentials.Register(ctx, u.Username, password, role)
		switch {
		case errors.Is(err, apperrors.ErrDuplicateUsername):
			log.Printf("User %s already exists, skipping", u.Username)
			existing++
		case err != nil:
			return created, existing, fmt.Errorf("user %s: %w", u.Username, err)
		default:
			log.Printf("Created %s user %s", role, u.Username)
			created++
		}
	}
	return created, existing, nil
}
