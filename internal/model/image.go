package model

import "time"

// Image captures an upload's metadata and its deflate-compressed payload.
// FileName is whatever the client sent and is not unique; StoredName is a
// generated uuid key that is. Data holds compressed bytes in storage and
// inflated bytes when served.
type Image struct {
	ID         uint64    `json:"id"`
	ItemID     *uint64   `json:"item_id,omitempty"`
	FileName   string    `json:"file_name"`
	StoredName string    `json:"stored_name"`
	MimeType   string    `json:"mime_type"`
	Data       []byte    `json:"data,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Snapshot returns an independent copy, including the payload bytes.
func (im Image) Snapshot() Image {
	out := im
	if im.ItemID != nil {
		id := *im.ItemID
		out.ItemID = &id
	}
	if im.Data != nil {
		out.Data = append([]byte(nil), im.Data...)
	}
	return out
}

// CloneImages deep-copies a slice of images; never returns nil.
func CloneImages(images []Image) []Image {
	out := make([]Image, 0, len(images))
	for _, im := range images {
		out = append(out, im.Snapshot())
	}
	return out
}
