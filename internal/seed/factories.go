package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fitbuddy/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Every seeded account logs in with this password.
const SeedPassword = "secret1"

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seed runner and tests.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUserWithProfile persists a user and a matching profile, the same
// shape Register produces.
func (f *Factory) CreateUserWithProfile() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(gofakeit.Username())
	if len(username) > 20 {
		username = username[:20]
	}

	user := &models.User{
		Username: username,
		Email:    strings.ToLower(fmt.Sprintf("%s.%s@%s", username, gofakeit.LetterN(4), gofakeit.DomainName())),
		Password: string(hash),
	}

	err = f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		birth := gofakeit.DateRange(
			time.Date(1965, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
		)
		profile := &models.Profile{
			UserID:        user.ID,
			Bio:           gofakeit.Sentence(8),
			Profession:    gofakeit.JobTitle(),
			Education:     gofakeit.Company(),
			BirthDate:     &birth,
			Residence:     gofakeit.City(),
			FavoriteSport: models.FavoriteSports[f.rand.Intn(len(models.FavoriteSports))],
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post authored by user with a realistic created_at
// spread over the last 90 days so feeds do not all share one timestamp.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:   gofakeit.Paragraph(1, 3, 8, " "),
		UserID: user.ID,
	}

	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by user on post, dated after the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Text:      gofakeit.Sentence(10),
		UserID:    user.ID,
		PostID:    post.ID,
		CreatedAt: post.CreatedAt.Add(time.Duration(1+f.rand.Intn(600)) * time.Minute),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records user liking post. The unique index on (post_id, user_id)
// makes a repeat call a no-op, which keeps reruns safe.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	err := f.db.Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		FirstOrCreate(like).Error
	return err
}
