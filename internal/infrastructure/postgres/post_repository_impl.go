package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// PostRepository stores the post aggregate in a single row with likes and
// comments as JSONB columns. Posts keep a denormalized author snapshot and
// carry no foreign key to users, so deleting an account leaves its posts
// behind.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	likes, err := json.Marshal(p.Likes)
	if err != nil {
		return err
	}
	comments, err := json.Marshal(p.Comments)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, name, avatar_url, text, likes, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.UserID, p.Name, p.AvatarURL, p.Text, likes, comments)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}
	var likes, comments []byte

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, avatar_url, text, likes, comments, created_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.AvatarURL, &p.Text,
		&likes, &comments, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(likes, &p.Likes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &p.Comments); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List() ([]entity.Post, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, avatar_url, text, likes, comments, created_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		var likes, comments []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.AvatarURL, &p.Text,
			&likes, &comments, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(likes, &p.Likes); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(comments, &p.Comments); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepository) Update(p *entity.Post) error {
	ctx := context.Background()
	likes, err := json.Marshal(p.Likes)
	if err != nil {
		return err
	}
	comments, err := json.Marshal(p.Comments)
	if err != nil {
		return err
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET likes = $1, comments = $2
		WHERE id = $3
	`, likes, comments, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
