package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// ProfileRepository stores the profile aggregate in a single row; skills,
// social links, experience, and education live in JSONB columns so the
// aggregate is always read and written as a whole.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

type profileDocs struct {
	skills     []byte
	social     []byte
	experience []byte
	education  []byte
}

func marshalDocs(p *entity.Profile) (profileDocs, error) {
	var d profileDocs
	var err error
	if d.skills, err = json.Marshal(p.Skills); err != nil {
		return d, err
	}
	if d.social, err = json.Marshal(p.Social); err != nil {
		return d, err
	}
	if d.experience, err = json.Marshal(p.Experience); err != nil {
		return d, err
	}
	if d.education, err = json.Marshal(p.Education); err != nil {
		return d, err
	}
	return d, nil
}

func unmarshalDocs(p *entity.Profile, d profileDocs) error {
	if err := json.Unmarshal(d.skills, &p.Skills); err != nil {
		return err
	}
	if err := json.Unmarshal(d.social, &p.Social); err != nil {
		return err
	}
	if err := json.Unmarshal(d.experience, &p.Experience); err != nil {
		return err
	}
	return json.Unmarshal(d.education, &p.Education)
}

func (r *ProfileRepository) Create(p *entity.Profile) error {
	ctx := context.Background()
	d, err := marshalDocs(p)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, company, website, location, bio, status,
			github_username, skills, social, experience, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, d.skills, d.social, d.experience, d.education)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepository) GetByUserID(userID string) (*entity.Profile, error) {
	ctx := context.Background()
	p := &entity.Profile{}
	var d profileDocs

	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status,
			p.github_username, p.skills, p.social, p.experience, p.education,
			p.created_at, p.updated_at, u.name, u.avatar_url
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`, userID)

	if err := row.Scan(&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location,
		&p.Bio, &p.Status, &p.GithubUsername, &d.skills, &d.social,
		&d.experience, &d.education, &p.CreatedAt, &p.UpdatedAt,
		&p.OwnerName, &p.OwnerAvatar); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := unmarshalDocs(p, d); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List() ([]entity.Profile, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status,
			p.github_username, p.skills, p.social, p.experience, p.education,
			p.created_at, p.updated_at, u.name, u.avatar_url
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Profile, 0)
	for rows.Next() {
		var p entity.Profile
		var d profileDocs
		if err := rows.Scan(&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location,
			&p.Bio, &p.Status, &p.GithubUsername, &d.skills, &d.social,
			&d.experience, &d.education, &p.CreatedAt, &p.UpdatedAt,
			&p.OwnerName, &p.OwnerAvatar); err != nil {
			return nil, err
		}
		if err := unmarshalDocs(&p, d); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfileRepository) Update(p *entity.Profile) error {
	ctx := context.Background()
	d, err := marshalDocs(p)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET company = $1, website = $2, location = $3, bio = $4, status = $5,
			github_username = $6, skills = $7, social = $8, experience = $9,
			education = $10, updated_at = $11
		WHERE user_id = $12
	`, p.Company, p.Website, p.Location, p.Bio, p.Status, p.GithubUsername,
		d.skills, d.social, d.experience, d.education, p.UpdatedAt, p.UserID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ProfileRepository) DeleteByUserID(userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
