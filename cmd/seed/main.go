package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/community-blog-api/config"
	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	"github.com/oksasatya/community-blog-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@communityblog.dev"
	username := "demoUser"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, username, name, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, username, "Demo User", hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	// One post per category so listings and stats have something to show.
	for _, cat := range entity.Categories() {
		title := fmt.Sprintf("A first look at %s", cat)
		content := fmt.Sprintf("Seeded starter post for the %s category. Replace me with real content.", cat)
		if _, err := db.Exec(`
			INSERT INTO posts (title, content, category, author_id)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM posts WHERE title = $1 AND author_id = $4)
		`, title, content, cat, id); err != nil {
			log.Fatalf("failed to seed post for %s: %v", cat, err)
		}
	}
	fmt.Println("seeded one post per category")
}
