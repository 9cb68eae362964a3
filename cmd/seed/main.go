// Command main runs the database seeder for FitBuddy.
package main

import (
	"flag"
	"log"

	"fitbuddy/internal/config"
	"fitbuddy/internal/database"
	"fitbuddy/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 12, "Number of users to create")
	postsPerUser := flag.Int("posts", 4, "Posts per user")
	commentsPerPost := flag.Int("comments", 3, "Comments per post")
	likeRatio := flag.Float64("likes", 0.35, "Chance a user likes any given post")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts each, clean=%v\n", *numUsers, *postsPerUser, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.ClearAll(db); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	opts := seed.Options{
		Users:           *numUsers,
		PostsPerUser:    *postsPerUser,
		CommentsPerPost: *commentsPerPost,
		LikeRatio:       *likeRatio,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Done. Log in with any seeded email and password %q.", seed.SeedPassword)
}
