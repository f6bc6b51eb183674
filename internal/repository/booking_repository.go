package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// BookingRepo encapsulates persistence for the booking aggregate: the
// booking row, its optional location, and its owned items with their
// image metadata.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts the booking and any inline items/images inside one
// transaction so a partially-written aggregate never becomes visible.
// Generated ids are written back into b.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
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
		`INSERT INTO bookings (user_id, booking_date_time, appointment_date_time, location_id, same_as_registered, collection_type, payment_method, remarks)
		 VALUES (?,?,?,?,?,?,?,?)`,
		b.UserID, b.BookingDateTime, b.AppointmentTime, b.LocationID, b.SameAsRegistered, b.CollectionType, b.PaymentMethod, b.Remarks)
	if err != nil {
		return err
	}
	var id int64
	if id, err = res.LastInsertId(); err != nil {
		return err
	}
	b.ID = uint64(id)

	for i := range b.Items {
		it := &b.Items[i]
		it.BookingID = &b.ID
		if res, err = tx.ExecContext(ctx,
			"INSERT INTO items (booking_id, name, description) VALUES (?,?,?)",
			b.ID, it.Name, it.Description); err != nil {
			return err
		}
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
	}

	err = tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM bookings WHERE id=?", b.ID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	return err
}

// GetByID loads the full aggregate: booking row, embedded location when
// referenced, and owned items with image metadata. Returns
// ErrBookingNotFound on a miss.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	var b model.Booking
	var locID sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT id,user_id,booking_date_time,appointment_date_time,location_id,same_as_registered,collection_type,payment_method,remarks,created_at,updated_at
		 FROM bookings WHERE id=?`, id).
		Scan(&b.ID, &b.UserID, &b.BookingDateTime, &b.AppointmentTime, &locID,
			&b.SameAsRegistered, &b.CollectionType, &b.PaymentMethod, &b.Remarks, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if locID.Valid {
		lid := uint64(locID.Int64)
		b.LocationID = &lid
		var l model.Location
		err := r.db.QueryRowContext(ctx,
			"SELECT id,name,latitude,longitude,created_at,updated_at FROM locations WHERE id=?", lid).
			Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			b.Location = &l
		}
	}
	items, err := r.ListItems(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Items = items
	return &b, nil
}

// Update applies full-replace semantics on the fixed field set. Location
// and items are deliberately untouched by this operation.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET user_id=?, booking_date_time=?, appointment_date_time=?, same_as_registered=?, collection_type=?, payment_method=?, remarks=?, updated_at=CURRENT_TIMESTAMP
		 WHERE id=?`,
		b.UserID, b.BookingDateTime, b.AppointmentTime, b.SameAsRegistered, b.CollectionType, b.PaymentMethod, b.Remarks, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.db.QueryRowContext(ctx, "SELECT id FROM bookings WHERE id=?", b.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes the booking row inside a transaction, detaching (not
// deleting) its items so standalone items survive the aggregate. The
// pre-deletion snapshot is returned.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) (*model.Booking, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, "UPDATE items SET booking_id=NULL WHERE booking_id=?", id); err != nil {
		return nil, err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id); err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrBookingNotFound
		return nil, err
	}
	return snapshot, err
}

// AddNewItem creates an item already attached to the booking.
func (r *BookingRepo) AddNewItem(ctx context.Context, bookingID uint64, it *model.Item) error {
	if err := r.exists(ctx, bookingID); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO items (booking_id, name, description) VALUES (?,?,?)",
		bookingID, it.Name, it.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	it.BookingID = &bookingID
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM items WHERE id=?", it.ID).
		Scan(&it.CreatedAt, &it.UpdatedAt)
}

// AttachItem re-points an existing item at the booking.
func (r *BookingRepo) AttachItem(ctx context.Context, bookingID, itemID uint64) error {
	if err := r.exists(ctx, bookingID); err != nil {
		return err
	}
	var exists uint64
	if err := r.db.QueryRowContext(ctx, "SELECT id FROM items WHERE id=?", itemID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE items SET booking_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", bookingID, itemID)
	return err
}

// ListItems returns the items attached to a booking with image metadata
// (payload bytes are not loaded on aggregate reads).
func (r *BookingRepo) ListItems(ctx context.Context, bookingID uint64) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,booking_id,name,description,created_at,updated_at FROM items WHERE booking_id=? ORDER BY id",
		bookingID)
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

func (r *BookingRepo) exists(ctx context.Context, id uint64) error {
	var got uint64
	err := r.db.QueryRowContext(ctx, "SELECT id FROM bookings WHERE id=?", id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	return err
}
