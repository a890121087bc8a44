package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	repo "github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/internal/infrastructure/github"
)

// ProfileService manages the profile aggregate: upsert, listing,
// experience and education sub-entities, account deletion, the GitHub
// repo lookup, and the Elasticsearch profile index.
type ProfileService struct {
	Profiles        repo.ProfileRepository
	Users           repo.UserRepository
	Github          *github.Client
	ES              *elasticsearch.Client
	ESProfilesIndex string
	Logger          *logrus.Logger
}

func NewProfileService(profiles repo.ProfileRepository, users repo.UserRepository, gh *github.Client, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		Profiles:        profiles,
		Users:           users,
		Github:          gh,
		ES:              es,
		ESProfilesIndex: esIndex,
		Logger:          logger,
	}
}

// ProfileInput carries the partial fields of a profile upsert. Empty
// fields are left untouched on update. Skills is a comma-delimited string
// split and trimmed into an ordered list.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// SplitSkills splits a comma-delimited skills string into trimmed entries,
// dropping blanks and preserving order.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (in ProfileInput) apply(p *entity.Profile) {
	if in.Company != "" {
		p.Company = in.Company
	}
	if in.Website != "" {
		p.Website = in.Website
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.GithubUsername != "" {
		p.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		p.Skills = SplitSkills(in.Skills)
	}
	if in.Youtube != "" {
		p.Social.Youtube = in.Youtube
	}
	if in.Twitter != "" {
		p.Social.Twitter = in.Twitter
	}
	if in.Facebook != "" {
		p.Social.Facebook = in.Facebook
	}
	if in.Linkedin != "" {
		p.Social.Linkedin = in.Linkedin
	}
	if in.Instagram != "" {
		p.Social.Instagram = in.Instagram
	}
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil || p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Upsert updates the caller's profile in place when one exists, otherwise
// creates it. Exactly one write and one result either way.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err == nil && p != nil {
		in.apply(p)
		if err := s.Profiles.Update(p); err != nil {
			return nil, err
		}
		s.indexProfile(ctx, p)
		return p, nil
	}

	p = &entity.Profile{
		UserID:     userID,
		Skills:     []string{},
		Experience: []entity.Experience{},
		Education:  []entity.Education{},
	}
	in.apply(p)
	if err := s.Profiles.Create(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p, nil
}

// List returns all profiles joined with each owner's name and avatar.
func (s *ProfileService) List() ([]entity.Profile, error) {
	return s.Profiles.List()
}

// GetByUserID returns another user's profile. A malformed id behaves like
// a missing profile.
func (s *ProfileService) GetByUserID(userID string) (*entity.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrProfileNotFound
	}
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil || p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// DeleteAccount removes the caller's profile and user record. Posts are
// deliberately left behind with their denormalized author snapshots.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Profiles.DeleteByUserID(userID); err != nil {
		return err
	}
	s.deleteProfileIndex(ctx, userID)
	return s.Users.Delete(userID)
}

// AddExperience inserts the entry at the front of the experience list
// (most-recent-insert-first) and returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, exp entity.Experience) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil || p == nil {
		return nil, ErrProfileNotFound
	}
	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}
	p.Experience = append([]entity.Experience{exp}, p.Experience...)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience deletes the entry with the given id. An unknown id is
// a no-op that still returns the unmodified profile.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil || p == nil {
		return nil, ErrProfileNotFound
	}
	idx := -1
	for i, e := range p.Experience {
		if e.ID == expID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p, nil
	}
	p.Experience = append(p.Experience[:idx], p.Experience[idx+1:]...)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddEducation mirrors AddExperience for education entries.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, edu entity.Education) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil || p == nil {
		return nil, ErrProfileNotFound
	}
	if edu.ID == "" {
		edu.ID = uuid.NewString()
	}
	p.Education = append([]entity.Education{edu}, p.Education...)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveEducation mirrors RemoveExperience, including the no-op-on-miss
// behavior.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if err != nil || p == nil {
		return nil, ErrProfileNotFound
	}
	idx := -1
	for i, e := range p.Education {
		if e.ID == eduID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p, nil
	}
	p.Education = append(p.Education[:idx], p.Education[idx+1:]...)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GithubRepos proxies the upstream repo lookup.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]github.Repo, error) {
	return s.Github.Repos(ctx, username)
}

func (s *ProfileService) indexProfile(ctx context.Context, p *entity.Profile) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return
	}
	doc := map[string]any{
		"user_id":  p.UserID,
		"status":   p.Status,
		"location": p.Location,
		"bio":      p.Bio,
		"skills":   p.Skills,
	}
	if u, err := s.Users.GetByID(p.UserID); err == nil && u != nil {
		doc["name"] = u.Name
		doc["avatar"] = u.AvatarURL
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESProfilesIndex,
		DocumentID: p.UserID,
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", p.UserID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", p.UserID).Warn("es index response error")
	}
}

func (s *ProfileService) deleteProfileIndex(ctx context.Context, userID string) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESProfilesIndex, DocumentID: userID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over the profile index. Returns an
// empty list when the index is not configured.
func (s *ProfileService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "status", "location", "skills", "bio"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESProfilesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
