// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"

	"fitbuddy/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Run generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikeRatio       float64 // chance that any given user likes any given post
}

// DefaultOptions returns a small but lively data set.
func DefaultOptions() Options {
	return Options{
		Users:           12,
		PostsPerUser:    4,
		CommentsPerPost: 3,
		LikeRatio:       0.35,
	}
}

// ClearAll removes every row from the domain tables, children first so the
// foreign keys never dangle mid-wipe.
func ClearAll(db *gorm.DB) error {
	tables := []interface{}{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	return nil
}

// Run populates the database with fake users, profiles, posts, comments and
// likes. It is idempotent enough for development: rerunning just adds more.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUserWithProfile()
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users with profiles", len(users))

	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post for user %d: %w", user.ID, err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("seeded %d posts", len(posts))

	comments := 0
	likes := 0
	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[f.rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("seed comment on post %d: %w", post.ID, err)
			}
			comments++
		}
		for _, user := range users {
			if f.rand.Float64() < opts.LikeRatio {
				if err := f.CreateLike(user, post); err != nil {
					return fmt.Errorf("seed like on post %d: %w", post.ID, err)
				}
				likes++
			}
		}
	}
	log.Printf("seeded %d comments and %d likes", comments, likes)

	return nil
}
