package models

import "time"

// Staff is a salon employee account used to sign in to the POS.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "owner" or "staff"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
