package application

import (
	"context"
	"errors"
	"testing"
)

func newTestPostService(posts *stubPostRepo, users *stubUserRepo) *PostService {
	return NewPostService(posts, users, nil)
}

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := newTestPostService(posts, users)
	u := seedUser(t, users, "Alice", "alice@example.com")
	u.AvatarURL = "https://gravatar.example/alice"
	if err := users.Update(u); err != nil {
		t.Fatalf("Update: %v", err)
	}

	p, err := svc.Create(context.Background(), u.ID, "hello world")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Alice" || p.AvatarURL != "https://gravatar.example/alice" {
		t.Errorf("snapshot = %q / %q", p.Name, p.AvatarURL)
	}
	if len(p.Likes) != 0 || len(p.Comments) != 0 {
		t.Errorf("new post has likes=%d comments=%d", len(p.Likes), len(p.Comments))
	}
}

func TestListNewestFirst(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := newTestPostService(posts, users)
	u := seedUser(t, users, "Alice", "alice@example.com")
	ctx := context.Background()

	if _, err := svc.Create(ctx, u.ID, "first"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, u.ID, "second"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	feed, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(feed) != 2 || feed[0].Text != "second" {
		t.Errorf("feed order: %+v", feed)
	}
}

func TestGetMalformedID(t *testing.T) {
	svc := newTestPostService(newStubPostRepo(), newStubUserRepo())
	_, err := svc.Get("not-a-uuid")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestDeleteOnlyByAuthor(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := newTestPostService(posts, users)
	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, "hello world")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, bob.ID, p.ID); !errors.Is(err, ErrNotPostAuthor) {
		t.Fatalf("Delete by non-author err = %v, want ErrNotPostAuthor", err)
	}
	if _, err := svc.Get(p.ID); err != nil {
		t.Fatalf("post removed by unauthorized delete: %v", err)
	}

	if err := svc.Delete(ctx, alice.ID, p.ID); err != nil {
		t.Fatalf("Delete by author: %v", err)
	}
	if _, err := svc.Get(p.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("post still present after delete: %v", err)
	}
}

func TestLikeTwiceRejected(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := newTestPostService(posts, users)
	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, "hello world")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	likes, err := svc.Like(ctx, bob.ID, p.ID)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if len(likes) != 1 || likes[0].UserID != bob.ID {
		t.Errorf("likes = %+v", likes)
	}

	if _, err := svc.Like(ctx, bob.ID, p.ID); !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("second Like err = %v, want ErrAlreadyLiked", err)
	}
	got, _ := svc.Get(p.ID)
	if len(got.Likes) != 1 {
		t.Errorf("like count after rejected double-like = %d, want 1", len(got.Likes))
	}
}

func TestUnlikeRequiresExistingLike(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := newTestPostService(posts, users)
	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, "hello world")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Unlike(ctx, bob.ID, p.ID); !errors.Is(err, ErrNotLiked) {
		t.Fatalf("Unlike without like err = %v, want ErrNotLiked", err)
	}

	if _, err := svc.Like(ctx, bob.ID, p.ID); err != nil {
		t.Fatalf("Like: %v", err)
	}
	likes, err := svc.Unlike(ctx, bob.ID, p.ID)
	if err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	if len(likes) != 0 {
		t.Errorf("likes after unlike = %+v", likes)
	}
}

func TestCommentRoundTrip(t *testing.T) {
	posts := newStubPostRepo()
	users := newStubUserRepo()
	svc := newTestPostService(posts, users)
	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, "hello world")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	comments, err := svc.AddComment(ctx, bob.ID, p.ID, "nice post")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("comment count = %d, want 1", len(comments))
	}
	c := comments[0]
	if c.ID == "" || c.Name != "Bob" || c.Text != "nice post" {
		t.Errorf("comment = %+v", c)
	}

	// only the comment's author may remove it
	if _, err := svc.RemoveComment(ctx, alice.ID, p.ID, c.ID); !errors.Is(err, ErrNotCommentAuthor) {
		t.Fatalf("RemoveComment by post author err = %v, want ErrNotCommentAuthor", err)
	}

	comments, err = svc.RemoveComment(ctx, bob.ID, p.ID, c.ID)
	if err != nil {
		t.Fatalf("RemoveComment: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comments after removal = %+v", comments)
	}

	if _, err := svc.RemoveComment(ctx, bob.ID, p.ID, c.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("RemoveComment twice err = %v, want ErrCommentNotFound", err)
	}
}
