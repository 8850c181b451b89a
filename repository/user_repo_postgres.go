package repository

import (
	"database/sql"
	"errors"
	"time"

	"biomedico/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.Usuario) error {
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	if user.FechaRegistro.IsZero() {
		user.FechaRegistro = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO usuarios (username, password, tipo_usuario, nombre_completo, email, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, user.Username, user.Password, user.TipoUsuario, user.NombreCompleto, user.Email, user.FechaRegistro).Scan(&user.ID)
}

func (r *PostgresUserRepo) GetUserByIdentifier(identifier string) (*models.Usuario, error) {
	return r.scanOne(`
		SELECT id, username, password, tipo_usuario, COALESCE(nombre_completo, ''), email, fecha_registro
		FROM usuarios
		WHERE username = $1 OR email = $1
	`, identifier)
}

func (r *PostgresUserRepo) FindExisting(identity, email string) (*models.Usuario, error) {
	return r.scanOne(`
		SELECT id, username, password, tipo_usuario, COALESCE(nombre_completo, ''), email, fecha_registro
		FROM usuarios
		WHERE username = $1 OR email = $2
	`, identity, email)
}

func (r *PostgresUserRepo) GetAllUsers() ([]*models.Usuario, error) {
	rows, err := r.DB.Query(`
		SELECT id, username, password, tipo_usuario, COALESCE(nombre_completo, ''), email, fecha_registro
		FROM usuarios
		ORDER BY fecha_registro DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.Usuario
	for rows.Next() {
		user := &models.Usuario{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.TipoUsuario,
			&user.NombreCompleto, &user.Email, &user.FechaRegistro); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepo) scanOne(query string, args ...interface{}) (*models.Usuario, error) {
	user := &models.Usuario{}
	err := r.DB.QueryRow(query, args...).Scan(&user.ID, &user.Username, &user.Password,
		&user.TipoUsuario, &user.NombreCompleto, &user.Email, &user.FechaRegistro)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
