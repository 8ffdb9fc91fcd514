package repository

import (
	"database/sql"
	"time"
)

// Column mapping follows the sqlx json mapper configured in pkg/database.

type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type Member struct {
	ID        int64          `json:"id"`
	MemberID  string         `json:"member_id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Email     sql.NullString `json:"email"`
	Birthday  sql.NullTime   `json:"birthday"`
	Note      sql.NullString `json:"note"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
