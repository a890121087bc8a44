package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	repo "github.com/devconnect/devconnect-api/internal/domain/repository"
)

// PostService manages the post aggregate: creation with the author
// snapshot, the feed, likes, and comments.
//
// Like and comment mutations are read-modify-write on the whole aggregate
// with no optimistic-concurrency check; two racing writers on the same
// post resolve last-write-wins.
type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create makes a post carrying a snapshot of the author's current name and
// avatar. The snapshot is never refreshed afterwards.
func (s *PostService) Create(ctx context.Context, userID, text string) (*entity.Post, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	p := &entity.Post{
		UserID:    u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Text:      text,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
	}
	if err := s.Posts.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the feed, newest first.
func (s *PostService) List() ([]entity.Post, error) {
	return s.Posts.List()
}

// Get returns a post by id. A malformed id behaves like a missing post.
func (s *PostService) Get(postID string) (*entity.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}
	p, err := s.Posts.GetByID(postID)
	if err != nil || p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	p, err := s.Get(postID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrNotPostAuthor
	}
	return s.Posts.Delete(p.ID)
}

// Like adds the caller to the post's likes set, newest first. Liking a
// post twice is rejected and leaves the set unchanged.
func (s *PostService) Like(ctx context.Context, userID, postID string) ([]entity.Like, error) {
	p, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if p.LikedBy(userID) {
		return nil, ErrAlreadyLiked
	}
	p.Likes = append([]entity.Like{{UserID: userID}}, p.Likes...)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like. Unliking a post that was never liked
// is rejected.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) ([]entity.Like, error) {
	p, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if !p.LikedBy(userID) {
		return nil, ErrNotLiked
	}
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			break
		}
	}
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment prepends a comment with the commenter's author snapshot and
// returns the updated comment list.
func (s *PostService) AddComment(ctx context.Context, userID, postID, text string) ([]entity.Comment, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	p, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	c := entity.Comment{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	p.Comments = append([]entity.Comment{c}, p.Comments...)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// RemoveComment deletes a comment by id. Only the comment's author may
// remove it.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]entity.Comment, error) {
	p, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if p.Comments[idx].UserID != userID {
		return nil, ErrNotCommentAuthor
	}
	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}
