package repository

import (
	"context"
	"database/sql"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// ContactRepo persists support tickets.
type ContactRepo struct{ db *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

// Create inserts a ticket; the message must already be sanitized.
func (r *ContactRepo) Create(ctx context.Context, c *model.Contact) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO contacts (first_name, last_name, email, phone, message) VALUES (?,?,?,?,?)",
		c.FirstName, c.LastName, c.Email, c.Phone, c.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM contacts WHERE id=?", c.ID).Scan(&c.CreatedAt)
}

// List returns every ticket, oldest first. No pagination by contract.
func (r *ContactRepo) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,first_name,last_name,email,phone,message,created_at FROM contacts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Contact{}
	for rows.Next() {
		c := new(model.Contact)
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
