package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// ItemRepo persists items and their image set.
type ItemRepo struct{ db *sql.DB }

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{db: db} }

// Create inserts a standalone item (no booking) with any inline images.
func (r *ItemRepo) Create(ctx context.Context, it *model.Item) error {
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

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		"INSERT INTO items (booking_id, name, description) VALUES (?,?,?)",
		it.BookingID, it.Name, it.Description)
	if err != nil {
		return err
	}
	var id int64
	if id, err = res.LastInsertId(); err != nil {
		return err
	}
	it.ID = uint64(id)
	for j := range it.Images {
		im := &it.Images[j]
		im.ItemID = &it.ID
		if res, err = tx.ExecContext(ctx,
			"INSERT INTO images (item_id, file_name, stored_name, mime_type, data) VALUES (?,?,?,?,?)",
			it.ID, im.FileName, im.StoredName, im.MimeType, im.Data); err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		im.ID = uint64(id)
	}
	err = tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM items WHERE id=?", it.ID).
		Scan(&it.CreatedAt, &it.UpdatedAt)
	return err
}

// GetByID loads an item and its image metadata; ErrItemNotFound on a miss.
func (r *ItemRepo) GetByID(ctx context.Context, id uint64) (*model.Item, error) {
	var it model.Item
	var bid sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT id,booking_id,name,description,created_at,updated_at FROM items WHERE id=?", id).
		Scan(&it.ID, &bid, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if bid.Valid {
		v := uint64(bid.Int64)
		it.BookingID = &v
	}
	imgs, err := listImageMeta(ctx, r.db, it.ID)
	if err != nil {
		return nil, err
	}
	it.Images = imgs
	return &it, nil
}

// List returns every item with image metadata.
func (r *ItemRepo) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,booking_id,name,description,created_at,updated_at FROM items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		var bid sql.NullInt64
		if err := rows.Scan(&it.ID, &bid, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		if bid.Valid {
			v := uint64(bid.Int64)
			it.BookingID = &v
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range items {
		imgs, err := listImageMeta(ctx, r.db, items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Images = imgs
	}
	return items, nil
}

// Update replaces name, description and the full image set in one
// transaction. Old image rows for the item are dropped and the new set
// inserted, matching full-replace semantics.
func (r *ItemRepo) Update(ctx context.Context, it *model.Item) error {
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

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		"UPDATE items SET name=?, description=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		it.Name, it.Description, it.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err = tx.QueryRowContext(ctx, "SELECT id FROM items WHERE id=?", it.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				err = ErrItemNotFound
			}
			return err
		}
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM images WHERE item_id=?", it.ID); err != nil {
		return err
	}
	for j := range it.Images {
		im := &it.Images[j]
		im.ItemID = &it.ID
		if res, err = tx.ExecContext(ctx,
			"INSERT INTO images (item_id, file_name, stored_name, mime_type, data) VALUES (?,?,?,?,?)",
			it.ID, im.FileName, im.StoredName, im.MimeType, im.Data); err != nil {
			return err
		}
		var id int64
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		im.ID = uint64(id)
	}
	return nil
}

// Delete removes an item and its images; ErrItemNotFound when absent.
func (r *ItemRepo) Delete(ctx context.Context, id uint64) error {
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
	if _, err = tx.ExecContext(ctx, "DELETE FROM images WHERE item_id=?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM items WHERE id=?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrItemNotFound
		return err
	}
	return nil
}

// listImageMeta loads image rows for an item without the payload column;
// aggregate reads never drag compressed blobs along.
func listImageMeta(ctx context.Context, db *sql.DB, itemID uint64) ([]model.Image, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id,item_id,file_name,stored_name,mime_type,created_at FROM images WHERE item_id=? ORDER BY id",
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Image{}
	for rows.Next() {
		var im model.Image
		var iid sql.NullInt64
		if err := rows.Scan(&im.ID, &iid, &im.FileName, &im.StoredName, &im.MimeType, &im.CreatedAt); err != nil {
			return nil, err
		}
		if iid.Valid {
			v := uint64(iid.Int64)
			im.ItemID = &v
		}
		out = append(out, im)
	}
	return out, rows.Err()
}
