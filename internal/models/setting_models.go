package models

import "time"

// KVEntry is one row of the key-value store: a text value addressed by namespace and key.
type KVEntry struct {
	Namespace string    `json:"namespace" db:"namespace"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
