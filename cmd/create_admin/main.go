package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"aerotours/internal/database"
	"aerotours/internal/domain"
	"aerotours/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrador", "display name")
	rotate := flag.Bool("rotate", false, "replace the password of an existing admin")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create_admin -email <email> -password <password> [-name <name>] [-rotate]")
		os.Exit(2)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "aerotours.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	ctx := context.Background()
	users := repository.NewAdminUserRepository(db)
	normalized := strings.ToLower(strings.TrimSpace(*email))

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	existing, err := users.GetByEmail(ctx, normalized)
	switch {
	case err == nil:
		if !*rotate {
			fmt.Fprintln(os.Stderr, "Admin user already exists:", normalized)
			fmt.Fprintln(os.Stderr, "Pass -rotate to replace the password.")
			os.Exit(1)
		}
		if err := users.UpdatePasswordHash(ctx, existing.ID, string(hash)); err != nil {
			log.Fatalf("failed to update password: %v", err)
		}
		fmt.Println("Admin password updated:", normalized)

	case errors.Is(err, gorm.ErrRecordNotFound):
		user := domain.AdminUser{
			Email:        normalized,
			PasswordHash: string(hash),
			Name:         *name,
			Role:         domain.RoleAdmin,
		}
		if err := users.Create(ctx, &user); err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}
		fmt.Println("Admin user created:", normalized)

	default:
		log.Fatalf("failed to look up admin user: %v", err)
	}
}
