package models

import "time"

// ClinicInfo is the clinic letterhead shown on HTML pages and the PDF
// report header.
type ClinicInfo struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Tagline   string    `json:"tagline" bson:"tagline" db:"tagline"`
	Address   string    `json:"address" bson:"address" db:"address"`
	City      string    `json:"city" bson:"city" db:"city"`
	Phone     string    `json:"phone" bson:"phone" db:"phone"`
	Email     string    `json:"email" bson:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
