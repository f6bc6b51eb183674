package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// LocationRepo encapsulates all database queries related to locations.
type LocationRepo struct{ db *sql.DB }

func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// Create inserts a new location and populates its generated id and
// timestamps on success.
func (r *LocationRepo) Create(ctx context.Context, l *model.Location) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO locations (name, latitude, longitude) VALUES (?,?,?)",
		l.Name, l.Latitude, l.Longitude)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM locations WHERE id=?", l.ID).
		Scan(&l.CreatedAt, &l.UpdatedAt)
}

// GetByID fetches a location, translating a miss into ErrLocationNotFound.
func (r *LocationRepo) GetByID(ctx context.Context, id uint64) (*model.Location, error) {
	var l model.Location
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,latitude,longitude,created_at,updated_at FROM locations WHERE id=?", id).
		Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns all locations ordered by id.
func (r *LocationRepo) List(ctx context.Context) ([]*model.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,name,latitude,longitude,created_at,updated_at FROM locations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Location{}
	for rows.Next() {
		l := new(model.Location)
		if err := rows.Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update replaces the location's fields.
func (r *LocationRepo) Update(ctx context.Context, l *model.Location) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE locations SET name=?, latitude=?, longitude=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		l.Name, l.Latitude, l.Longitude, l.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, l.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a location; ErrLocationNotFound when no row matched.
func (r *LocationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrLocationNotFound
	}
	return nil
}
