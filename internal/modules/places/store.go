// README: Favorite store backed by PostgreSQL.
package places

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, f *Favorite) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO favorites (id, name, address, lat, lng, icon, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Name, f.Address, f.Coord.Lat, f.Coord.Lng, f.Icon, f.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Favorite, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, address, lat, lng, icon, created_at
        FROM favorites
        WHERE id = $1`, id,
	)

	var f Favorite
	err := row.Scan(&f.ID, &f.Name, &f.Address, &f.Coord.Lat, &f.Coord.Lng, &f.Icon, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) List(ctx context.Context) ([]Favorite, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, address, lat, lng, icon, created_at
        FROM favorites
        ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.Name, &f.Address, &f.Coord.Lat, &f.Coord.Lng, &f.Icon, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
