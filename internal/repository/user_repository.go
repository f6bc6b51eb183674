package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,email,password_hash,role,first_name,last_name,contact_number,address,date_of_birth,gender,is_active,created_at,updated_at"

// Create inserts a user and returns its ID. Duplicate emails surface as
// ErrEmailExists (MySQL duplicate-key 1062).
func (r *UserRepo) Create(ctx context.Context, u *model.User) (uint64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, role, first_name, last_name, contact_number, address, date_of_birth, gender)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		u.Email, u.PasswordHash, u.Role, u.FirstName, u.LastName, u.ContactNumber, u.Address, nullIfEmpty(u.DateOfBirth), u.Gender)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.one(ctx, "SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.one(ctx, "SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id)
}

// List returns all users ordered by id. ADMIN-only at the route layer.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+userCols+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateProfile replaces the self-service profile fields. Email, role and
// password are not touched by this path.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *model.User) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET first_name=?, last_name=?, contact_number=?, address=?, date_of_birth=?, gender=?, updated_at=CURRENT_TIMESTAMP
		 WHERE id=?`,
		u.FirstName, u.LastName, u.ContactNumber, u.Address, nullIfEmpty(u.DateOfBirth), u.Gender, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update;
		// confirm existence before reporting not found.
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepo) one(ctx context.Context, q string, args ...any) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanUser(s rowScanner) (model.User, error) {
	var u model.User
	var dob sql.NullString
	err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName,
		&u.ContactNumber, &u.Address, &dob, &u.Gender, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	u.DateOfBirth = dob.String
	return u, err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
