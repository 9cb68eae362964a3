// Package service contains the business logic between HTTP handlers
// and repositories.
package service

import (
	"time"

	"fitbuddy/internal/models"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 3

// CommentPreviewSize is how many of the newest comments ride along on a post.
const CommentPreviewSize = 2

// CommentView is the API shape of a comment.
type CommentView struct {
	ID        uint               `json:"id"`
	Text      string             `json:"text"`
	User      models.UserSummary `json:"user"`
	PostID    uint               `json:"postId"`
	CreatedAt time.Time          `json:"createdAt"`
}

// PostView is the API shape of a post: the author and likers collapsed to
// summaries, plus a short preview of the newest comments.
type PostView struct {
	ID           uint                 `json:"id"`
	Text         string               `json:"text"`
	User         models.UserSummary   `json:"user"`
	Likes        []models.UserSummary `json:"likes"`
	LikeCount    int                  `json:"likeCount"`
	Comments     []CommentView        `json:"comments"`
	CommentCount int                  `json:"commentCount"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// ProfileView is the API shape of a profile. BirthDate is rendered as an
// ISO 8601 date string, empty when unset.
type ProfileView struct {
	ID            uint               `json:"id"`
	User          models.UserSummary `json:"user"`
	Bio           string             `json:"bio,omitempty"`
	Profession    string             `json:"profession,omitempty"`
	Education     string             `json:"education,omitempty"`
	BirthDate     string             `json:"birthDate,omitempty"`
	Residence     string             `json:"residence,omitempty"`
	FavoriteSport string             `json:"favoriteSport"`
}

// NewCommentView builds the view of a comment. The User association must be
// loaded.
func NewCommentView(c *models.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		Text:      c.Text,
		User:      c.User.Summary(),
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
	}
}

// NewCommentViews maps a slice of comments to views.
func NewCommentViews(comments []*models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, NewCommentView(c))
	}
	return views
}

// NewPostView builds the view of a post. Comments must already be ordered
// newest first; only the first CommentPreviewSize make it into the view while
// CommentCount keeps the real total.
func NewPostView(p *models.Post) *PostView {
	likes := make([]models.UserSummary, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, l.User.Summary())
	}

	preview := p.Comments
	if len(preview) > CommentPreviewSize {
		preview = preview[:CommentPreviewSize]
	}
	comments := make([]CommentView, 0, len(preview))
	for i := range preview {
		comments = append(comments, NewCommentView(&preview[i]))
	}

	return &PostView{
		ID:           p.ID,
		Text:         p.Text,
		User:         p.User.Summary(),
		Likes:        likes,
		LikeCount:    len(p.Likes),
		Comments:     comments,
		CommentCount: len(p.Comments),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewPostViews maps a slice of posts to views.
func NewPostViews(posts []*models.Post) []*PostView {
	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p))
	}
	return views
}

// NewProfileView builds the view of a profile. The User association must be
// loaded.
func NewProfileView(p *models.Profile) *ProfileView {
	birthDate := ""
	if p.BirthDate != nil {
		birthDate = p.BirthDate.Format("2006-01-02")
	}
	return &ProfileView{
		ID:            p.ID,
		User:          p.User.Summary(),
		Bio:           p.Bio,
		Profession:    p.Profession,
		Education:     p.Education,
		BirthDate:     birthDate,
		Residence:     p.Residence,
		FavoriteSport: p.FavoriteSport,
	}
}

// NewProfileViews maps a slice of profiles to views.
func NewProfileViews(profiles []*models.Profile) []*ProfileView {
	views := make([]*ProfileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, NewProfileView(p))
	}
	return views
}
