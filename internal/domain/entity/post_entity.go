package entity

import (
	"time"
)

// Post is the aggregate root for the feed. Name and AvatarURL are a
// snapshot of the author taken at creation time; they are deliberately
// never refreshed when the author later edits their profile.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Text      string    `json:"text"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// Like records a single user's like. The likes list is a set keyed by
// UserID; newest likes sit at the front.
type Like struct {
	UserID string `json:"user"`
}

// Comment carries the same author snapshot as its parent post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

// LikedBy reports whether userID is present in the likes set.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
