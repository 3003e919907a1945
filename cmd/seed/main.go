package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/config"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/database"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/repository"
)

// Seeds a demo account for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	if err := database.Connect(cfg.DatabasePath); err != nil {
		log.Fatalf("❌ Failed to connect: %v", err)
	}
	defer database.Close()

	store := repository.NewGormStore(database.DB)
	user, err := store.CreateUser("student", "student123")
	if err != nil {
		if err == repository.ErrDuplicateUser {
			log.Println("Demo user already exists")
			return
		}
		log.Fatalf("❌ Failed to seed user: %v", err)
	}
	log.Printf("✅ Seeded demo user %q (id=%d)", user.Username, user.ID)
}
