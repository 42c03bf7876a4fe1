package model

import "time"

// StoredRecord backs the record store: one row per well-known key, holding
// the whole serialized collection. A write replaces the row in one
// statement, which is what makes repository writes single logical writes.
type StoredRecord struct {
	Key       string    `gorm:"primarykey;size:128" json:"key"`
	Data      []byte    `gorm:"not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
