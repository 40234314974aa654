package storage

import "time"

// Tariff is a named water price charged by a utility.
type Tariff struct {
	Key        string    `json:"key" gorm:"primaryKey;column:key"`
	Name       string    `json:"name" gorm:"column:name"`
	PricePerM3 float64   `json:"price_per_m3" gorm:"column:price_per_m3"`
	Currency   string    `json:"currency" gorm:"column:currency"`
	Notes      string    `json:"notes,omitempty" gorm:"column:notes"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Tariff) TableName() string { return "tariffs" }
