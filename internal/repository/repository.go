package repository

import (
	"database/sql"

	"building_directory/internal/models"
)

// Users is the local account store backing the authentication layer.
// Building and place data is never stored locally; it lives upstream.
type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
