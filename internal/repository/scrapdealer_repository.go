package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// ScrapDealerRepo persists dealer profiles.
type ScrapDealerRepo struct{ db *sql.DB }

func NewScrapDealerRepo(db *sql.DB) *ScrapDealerRepo { return &ScrapDealerRepo{db: db} }

// Create inserts a dealer profile owned by the given user.
func (r *ScrapDealerRepo) Create(ctx context.Context, d *model.ScrapDealer) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO scrap_dealers (user_id, company_name, contact_number, email) VALUES (?,?,?,?)",
		d.UserID, d.CompanyName, d.ContactNumber, d.Email)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM scrap_dealers WHERE id=?", d.ID).
		Scan(&d.CreatedAt, &d.UpdatedAt)
}

// GetByID fetches a dealer; ErrScrapDealerNotFound on a miss.
func (r *ScrapDealerRepo) GetByID(ctx context.Context, id uint64) (*model.ScrapDealer, error) {
	var d model.ScrapDealer
	err := r.db.QueryRowContext(ctx,
		"SELECT id,user_id,company_name,contact_number,email,created_at,updated_at FROM scrap_dealers WHERE id=?", id).
		Scan(&d.ID, &d.UserID, &d.CompanyName, &d.ContactNumber, &d.Email, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScrapDealerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all dealer profiles ordered by id.
func (r *ScrapDealerRepo) List(ctx context.Context) ([]*model.ScrapDealer, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,user_id,company_name,contact_number,email,created_at,updated_at FROM scrap_dealers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.ScrapDealer{}
	for rows.Next() {
		d := new(model.ScrapDealer)
		if err := rows.Scan(&d.ID, &d.UserID, &d.CompanyName, &d.ContactNumber, &d.Email, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Delete removes a dealer and its published availability slots in one
// transaction.
func (r *ScrapDealerRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, "DELETE FROM availability WHERE scrap_dealer_id=?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM scrap_dealers WHERE id=?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrScrapDealerNotFound
		return err
	}
	return nil
}
