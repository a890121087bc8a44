package application

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

var errStubNotFound = errors.New("not found")

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	users     map[string]*entity.User // by id
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}}
}

func (s *stubUserRepo) Create(u *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *stubUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errStubNotFound
}

func (s *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errStubNotFound
}

func (s *stubUserRepo) Update(u *entity.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return errStubNotFound
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *stubUserRepo) Delete(id string) error {
	if _, ok := s.users[id]; !ok {
		return errStubNotFound
	}
	delete(s.users, id)
	return nil
}

// stubProfileRepo is an in-memory ProfileRepository keyed by user id.
type stubProfileRepo struct {
	profiles map[string]*entity.Profile
	creates  int
	updates  int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: map[string]*entity.Profile{}}
}

func (s *stubProfileRepo) Create(p *entity.Profile) error {
	s.creates++
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	s.profiles[p.UserID] = &cp
	return nil
}

func (s *stubProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	if p, ok := s.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, errStubNotFound
}

func (s *stubProfileRepo) List() ([]entity.Profile, error) {
	out := make([]entity.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubProfileRepo) Update(p *entity.Profile) error {
	if _, ok := s.profiles[p.UserID]; !ok {
		return errStubNotFound
	}
	s.updates++
	p.UpdatedAt = time.Now()
	cp := *p
	s.profiles[p.UserID] = &cp
	return nil
}

func (s *stubProfileRepo) DeleteByUserID(userID string) error {
	delete(s.profiles, userID)
	return nil
}

// stubPostRepo is an in-memory PostRepository, newest first.
type stubPostRepo struct {
	posts []*entity.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func (s *stubPostRepo) Create(p *entity.Post) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	cp := *p
	s.posts = append([]*entity.Post{&cp}, s.posts...)
	return nil
}

func (s *stubPostRepo) GetByID(id string) (*entity.Post, error) {
	for _, p := range s.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errStubNotFound
}

func (s *stubPostRepo) List() ([]entity.Post, error) {
	out := make([]entity.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPostRepo) Update(p *entity.Post) error {
	for i, existing := range s.posts {
		if existing.ID == p.ID {
			cp := *p
			s.posts[i] = &cp
			return nil
		}
	}
	return errStubNotFound
}

func (s *stubPostRepo) Delete(id string) error {
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return errStubNotFound
}
