package repository

import (
	"database/sql"
	"time"

	"biomedico/models"
)

type PostgresClinicInfoRepo struct {
	DB *sql.DB
}

func NewPostgresClinicInfoRepo(db *sql.DB) *PostgresClinicInfoRepo {
	return &PostgresClinicInfoRepo{DB: db}
}

func (r *PostgresClinicInfoRepo) SaveClinicInfo(info *models.ClinicInfo) error {
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO clinic_info (name, tagline, address, city, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, info.Name, info.Tagline, info.Address, info.City, info.Phone, info.Email, info.CreatedAt).Scan(&info.ID)
}

func (r *PostgresClinicInfoRepo) GetClinicInfo() (*models.ClinicInfo, error) {
	info := &models.ClinicInfo{}
	err := r.DB.QueryRow(`
		SELECT id, name, tagline, address, city, phone, email, created_at
		FROM clinic_info
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&info.ID, &info.Name, &info.Tagline, &info.Address, &info.City,
		&info.Phone, &info.Email, &info.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return info, nil
}
