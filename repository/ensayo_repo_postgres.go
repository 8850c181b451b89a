package repository

import (
	"database/sql"
	"time"

	"biomedico/models"
)

type PostgresEnsayoRepo struct {
	DB *sql.DB
}

func NewPostgresEnsayoRepo(db *sql.DB) *PostgresEnsayoRepo {
	return &PostgresEnsayoRepo{DB: db}
}

func (r *PostgresEnsayoRepo) CreateEnsayo(e *models.EnsayoClinico) error {
	if e.Estado == "" {
		e.Estado = "activo"
	}
	if e.CreadoEn.IsZero() {
		e.CreadoEn = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO ensayos_clinicos (titulo, description, fecha_inicio, fecha_fin, estado, usuario_id, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, e.Titulo, e.Description, e.FechaInicio, e.FechaFin, e.Estado, e.UsuarioID, e.CreadoEn).Scan(&e.ID)
}

func (r *PostgresEnsayoRepo) GetAllEnsayos() ([]*models.EnsayoClinico, error) {
	rows, err := r.DB.Query(`
		SELECT e.id, e.titulo, e.description, e.fecha_inicio, e.fecha_fin, e.estado,
		       e.usuario_id, e.creado_en, u.username AS creado_por, u.nombre_completo
		FROM ensayos_clinicos e
		LEFT JOIN usuarios u ON e.usuario_id = u.id
		ORDER BY e.creado_en DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ensayos []*models.EnsayoClinico
	for rows.Next() {
		e := &models.EnsayoClinico{}
		if err := rows.Scan(&e.ID, &e.Titulo, &e.Description, &e.FechaInicio, &e.FechaFin,
			&e.Estado, &e.UsuarioID, &e.CreadoEn, &e.CreadoPor, &e.NombreCompleto); err != nil {
			return nil, err
		}
		ensayos = append(ensayos, e)
	}
	return ensayos, rows.Err()
}

func (r *PostgresEnsayoRepo) UpdateEnsayo(e *models.EnsayoClinico) error {
	_, err := r.DB.Exec(`
		UPDATE ensayos_clinicos
		SET titulo = $1, description = $2, fecha_inicio = $3, fecha_fin = $4, estado = $5
		WHERE id = $6
	`, e.Titulo, e.Description, e.FechaInicio, e.FechaFin, e.Estado, e.ID)
	return err
}

func (r *PostgresEnsayoRepo) DeleteEnsayo(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM ensayos_clinicos WHERE id = $1`, id)
	return err
}
