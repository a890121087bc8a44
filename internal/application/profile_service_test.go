package application

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

func newTestProfileService(profiles *stubProfileRepo, users *stubUserRepo) *ProfileService {
	return NewProfileService(profiles, users, nil, nil, "", nil)
}

func seedUser(t *testing.T, users *stubUserRepo, name, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, Password: "hash"}
	if err := users.Create(u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills(" Go, JavaScript ,, SQL ")
	want := []string{"Go", "JavaScript", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSkills = %v, want %v", got, want)
	}
	if got := SplitSkills(""); len(got) != 0 {
		t.Errorf("SplitSkills(\"\") = %v, want empty", got)
	}
}

func TestUpsertCreatesThenUpdatesSingleProfile(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newTestProfileService(profiles, users)
	u := seedUser(t, users, "Alice", "alice@example.com")
	ctx := context.Background()

	p1, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go,SQL", Bio: "first"})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if p1.Bio != "first" || p1.Status != "Developer" {
		t.Errorf("created profile = %+v", p1)
	}

	p2, err := svc.Upsert(ctx, u.ID, ProfileInput{Bio: "second", Twitter: "https://twitter.com/alice"})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if p2.Bio != "second" {
		t.Errorf("Bio = %q, want %q", p2.Bio, "second")
	}
	if p2.Status != "Developer" {
		t.Errorf("Status overwritten by empty input: %q", p2.Status)
	}
	if p2.Social.Twitter != "https://twitter.com/alice" {
		t.Errorf("Twitter = %q", p2.Social.Twitter)
	}
	if profiles.creates != 1 {
		t.Errorf("creates = %d, want 1", profiles.creates)
	}
	if profiles.updates != 1 {
		t.Errorf("updates = %d, want 1", profiles.updates)
	}
}

func TestGetByUserIDMalformedID(t *testing.T) {
	svc := newTestProfileService(newStubProfileRepo(), newStubUserRepo())
	_, err := svc.GetByUserID("not-a-uuid")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestAddRemoveExperience(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newTestProfileService(profiles, users)
	u := seedUser(t, users, "Alice", "alice@example.com")
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	p, err := svc.AddExperience(ctx, u.ID, entity.Experience{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	p, err = svc.AddExperience(ctx, u.ID, entity.Experience{Title: "Senior Engineer", Company: "Acme", From: "2022-06-01", Current: true})
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	if len(p.Experience) != 2 {
		t.Fatalf("experience count = %d, want 2", len(p.Experience))
	}
	if p.Experience[0].Title != "Senior Engineer" {
		t.Errorf("newest entry not first: %q", p.Experience[0].Title)
	}
	if p.Experience[0].ID == "" || p.Experience[1].ID == "" {
		t.Error("experience entries missing ids")
	}

	p, err = svc.RemoveExperience(ctx, u.ID, p.Experience[1].ID)
	if err != nil {
		t.Fatalf("RemoveExperience: %v", err)
	}
	if len(p.Experience) != 1 || p.Experience[0].Title != "Senior Engineer" {
		t.Errorf("after removal: %+v", p.Experience)
	}
}

func TestRemoveExperienceUnknownIDIsNoOp(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newTestProfileService(profiles, users)
	u := seedUser(t, users, "Alice", "alice@example.com")
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	p, err := svc.AddExperience(ctx, u.ID, entity.Experience{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	updatesBefore := profiles.updates

	p, err = svc.RemoveExperience(ctx, u.ID, uuid.NewString())
	if err != nil {
		t.Fatalf("RemoveExperience: %v", err)
	}
	if len(p.Experience) != 1 {
		t.Errorf("experience count = %d, want 1", len(p.Experience))
	}
	if profiles.updates != updatesBefore {
		t.Error("no-op removal wrote to the repository")
	}
}

func TestAddRemoveEducation(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newTestProfileService(profiles, users)
	u := seedUser(t, users, "Alice", "alice@example.com")
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Student", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	p, err := svc.AddEducation(ctx, u.ID, entity.Education{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2016-09-01"})
	if err != nil {
		t.Fatalf("AddEducation: %v", err)
	}
	if len(p.Education) != 1 || p.Education[0].School != "MIT" {
		t.Fatalf("education = %+v", p.Education)
	}

	p, err = svc.RemoveEducation(ctx, u.ID, p.Education[0].ID)
	if err != nil {
		t.Fatalf("RemoveEducation: %v", err)
	}
	if len(p.Education) != 0 {
		t.Errorf("education count = %d, want 0", len(p.Education))
	}
}

func TestDeleteAccountLeavesPostsBehind(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	posts := newStubPostRepo()
	profileSvc := newTestProfileService(profiles, users)
	postSvc := NewPostService(posts, users, nil)
	u := seedUser(t, users, "Alice", "alice@example.com")
	ctx := context.Background()

	if _, err := profileSvc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := postSvc.Create(ctx, u.ID, "hello world"); err != nil {
		t.Fatalf("Create post: %v", err)
	}

	if err := profileSvc.DeleteAccount(ctx, u.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, err := users.GetByID(u.ID); err == nil {
		t.Error("user still exists after DeleteAccount")
	}
	if _, err := profiles.GetByUserID(u.ID); err == nil {
		t.Error("profile still exists after DeleteAccount")
	}
	feed, err := postSvc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("post count = %d, want 1 (posts survive account deletion)", len(feed))
	}
	if feed[0].Name != "Alice" {
		t.Errorf("orphaned post lost its author snapshot: %q", feed[0].Name)
	}
}
