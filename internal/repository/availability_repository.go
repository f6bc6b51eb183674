package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// AvailabilityRepo persists dealer availability slots.
type AvailabilityRepo struct{ db *sql.DB }

func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

// Create inserts a slot. The location must resolve; a foreign-key failure
// is reported as ErrLocationNotFound so handlers can 404 cleanly.
func (r *AvailabilityRepo) Create(ctx context.Context, a *model.Availability) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO availability (scrap_dealer_id, date, location_id) VALUES (?,?,?)",
		a.ScrapDealerID, a.Date, a.LocationID)
	if err != nil {
		// MySQL 1452: cannot add or update a child row (FK violation)
		if strings.Contains(err.Error(), "1452") {
			return ErrLocationNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM availability WHERE id=?", a.ID).Scan(&a.CreatedAt)
}

// Search returns slots filtered by date (YYYY-MM-DD) and/or location name,
// with the location joined in. Empty filters match everything.
func (r *AvailabilityRepo) Search(ctx context.Context, date, location string) ([]*model.Availability, error) {
	where := []string{}
	args := []any{}
	if date != "" {
		where = append(where, "a.date = ?")
		args = append(args, date)
	}
	if location != "" {
		where = append(where, "LOWER(l.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(location)+"%")
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	q := `SELECT a.id, a.scrap_dealer_id, a.date, a.location_id, a.created_at,
	             l.id, l.name, l.latitude, l.longitude, l.created_at, l.updated_at
	      FROM availability a
	      JOIN locations l ON l.id = a.location_id
	      WHERE ` + cond + ` ORDER BY a.date, a.id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Availability{}
	for rows.Next() {
		a := new(model.Availability)
		l := new(model.Location)
		var rawDate sql.RawBytes
		if err := rows.Scan(&a.ID, &a.ScrapDealerID, &rawDate, &a.LocationID, &a.CreatedAt,
			&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		a.Date = normalizeDate(string(rawDate))
		a.Location = l
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListByDealer returns a dealer's published slots.
func (r *AvailabilityRepo) ListByDealer(ctx context.Context, dealerID uint64) ([]*model.Availability, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, scrap_dealer_id, date, location_id, created_at FROM availability WHERE scrap_dealer_id=? ORDER BY date, id",
		dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Availability{}
	for rows.Next() {
		a := new(model.Availability)
		var rawDate sql.RawBytes
		if err := rows.Scan(&a.ID, &a.ScrapDealerID, &rawDate, &a.LocationID, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Date = normalizeDate(string(rawDate))
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete removes a slot; ErrAvailabilityNotFound when absent.
func (r *AvailabilityRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM availability WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}

// normalizeDate trims a DATE column scanned as raw bytes to YYYY-MM-DD.
func normalizeDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
