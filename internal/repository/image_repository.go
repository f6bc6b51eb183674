package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// ImageRepo persists compressed image payloads and their metadata.
type ImageRepo struct{ db *sql.DB }

func NewImageRepo(db *sql.DB) *ImageRepo { return &ImageRepo{db: db} }

const imageCols = "id,item_id,file_name,stored_name,mime_type,data,created_at"

// Create inserts an image row; Data must already be compressed.
func (r *ImageRepo) Create(ctx context.Context, im *model.Image) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO images (item_id, file_name, stored_name, mime_type, data) VALUES (?,?,?,?,?)",
		im.ItemID, im.FileName, im.StoredName, im.MimeType, im.Data)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	im.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM images WHERE id=?", im.ID).Scan(&im.CreatedAt)
}

// GetByID loads an image including its compressed payload.
func (r *ImageRepo) GetByID(ctx context.Context, id uint64) (*model.Image, error) {
	return r.one(ctx, "SELECT "+imageCols+" FROM images WHERE id=?", id)
}

// GetByFileName loads the first image matching the uploaded filename.
// Filenames are not unique at the data-model level; the lowest id wins.
func (r *ImageRepo) GetByFileName(ctx context.Context, fileName string) (*model.Image, error) {
	return r.one(ctx, "SELECT "+imageCols+" FROM images WHERE file_name=? ORDER BY id LIMIT 1", fileName)
}

// Update replaces metadata and payload for an existing image.
func (r *ImageRepo) Update(ctx context.Context, im *model.Image) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE images SET file_name=?, stored_name=?, mime_type=?, data=? WHERE id=?",
		im.FileName, im.StoredName, im.MimeType, im.Data, im.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.db.QueryRowContext(ctx, "SELECT id FROM images WHERE id=?", im.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrImageNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes an image; ErrImageNotFound when absent.
func (r *ImageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM images WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrImageNotFound
	}
	return nil
}

func (r *ImageRepo) one(ctx context.Context, q string, args ...any) (*model.Image, error) {
	var im model.Image
	var iid sql.NullInt64
	err := r.db.QueryRowContext(ctx, q, args...).
		Scan(&im.ID, &iid, &im.FileName, &im.StoredName, &im.MimeType, &im.Data, &im.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	if iid.Valid {
		v := uint64(iid.Int64)
		im.ItemID = &v
	}
	return &im, nil
}
