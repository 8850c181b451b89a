package repository

import "biomedico/models"

// EnsayoRepository defines the interface for clinical trial operations.
type EnsayoRepository interface {
	CreateEnsayo(e *models.EnsayoClinico) error
	// GetAllEnsayos returns all trials joined with their creator, newest
	// first.
	GetAllEnsayos() ([]*models.EnsayoClinico, error)
	UpdateEnsayo(e *models.EnsayoClinico) error
	DeleteEnsayo(id int64) error
}
