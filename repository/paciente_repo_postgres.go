package repository

import (
	"database/sql"
	"strconv"

	"biomedico/models"
)

type PostgresPacienteRepo struct {
	DB *sql.DB
}

func NewPostgresPacienteRepo(db *sql.DB) *PostgresPacienteRepo {
	return &PostgresPacienteRepo{DB: db}
}

func (r *PostgresPacienteRepo) CreatePaciente(p *models.Paciente) error {
	return r.DB.QueryRow(`
		INSERT INTO pacientes (
			usuario_id,
			historial_clinico,
			grupo_sanguineo,
			alergias,
			enfermedades_cronicas,
			medicamentos_actuales,
			contacto_emergencia,
			telefono_emergencia
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, p.UsuarioID, p.HistorialClinico, p.GrupoSanguineo, p.Alergias,
		p.EnfermedadesCronicas, p.MedicamentosActuales, p.ContactoEmergencia,
		p.TelefonoEmergencia).Scan(&p.ID)
}

func (r *PostgresPacienteRepo) GetPacienteByID(id int64) (*models.Paciente, error) {
	p := &models.Paciente{}
	err := r.DB.QueryRow(`
		SELECT
			p.id,
			p.usuario_id,
			COALESCE(p.historial_clinico, 'Sin historial'),
			COALESCE(p.grupo_sanguineo, 'No especificado'),
			COALESCE(p.alergias, 'No especificadas'),
			COALESCE(p.enfermedades_cronicas, 'No especificadas'),
			COALESCE(p.medicamentos_actuales, 'No especificados'),
			COALESCE(p.contacto_emergencia, 'No especificado'),
			COALESCE(p.telefono_emergencia, 'No especificado'),
			u.nombre_completo,
			u.username,
			u.email,
			u.tipo_usuario
		FROM pacientes p
		LEFT JOIN usuarios u ON p.usuario_id = u.id
		WHERE p.id = $1
	`, id).Scan(&p.ID, &p.UsuarioID, &p.HistorialClinico, &p.GrupoSanguineo,
		&p.Alergias, &p.EnfermedadesCronicas, &p.MedicamentosActuales,
		&p.ContactoEmergencia, &p.TelefonoEmergencia,
		&p.NombreCompleto, &p.Username, &p.Email, &p.TipoUsuario)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

func (r *PostgresPacienteRepo) SearchPacientes(q string, ownerUserID *int64) ([]*models.PacienteResumen, error) {
	query := `
		SELECT
			p.id,
			u.nombre_completo AS nombre,
			u.username AS email,
			COALESCE(p.historial_clinico, ''),
			COALESCE(p.grupo_sanguineo, '')
		FROM pacientes p
		LEFT JOIN usuarios u ON p.usuario_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	n := 0

	if q != "" {
		idMatch := 0
		if parsed, err := strconv.Atoi(q); err == nil {
			idMatch = parsed
		}
		term := "%" + q + "%"
		query += ` AND (u.nombre_completo ILIKE $1 OR u.username ILIKE $2 OR u.email ILIKE $3 OR p.id = $4 OR p.historial_clinico ILIKE $5)`
		args = append(args, term, term, term, idMatch, term)
		n = 5
	}

	if ownerUserID != nil {
		query += ` AND u.id = $` + strconv.Itoa(n+1)
		args = append(args, *ownerUserID)
	}

	query += ` ORDER BY p.id DESC LIMIT 50`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.PacienteResumen
	for rows.Next() {
		p := &models.PacienteResumen{}
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Email, &p.HistorialClinico, &p.GrupoSanguineo); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *PostgresPacienteRepo) GetAllPacientes() ([]*models.Paciente, error) {
	rows, err := r.DB.Query(`
		SELECT
			p.id,
			p.usuario_id,
			COALESCE(p.historial_clinico, 'Sin historial'),
			COALESCE(p.grupo_sanguineo, 'No especificado'),
			COALESCE(p.alergias, 'No especificadas'),
			COALESCE(p.enfermedades_cronicas, 'No especificadas'),
			COALESCE(p.medicamentos_actuales, 'No especificados'),
			COALESCE(p.contacto_emergencia, 'No especificado'),
			COALESCE(p.telefono_emergencia, 'No especificado'),
			u.nombre_completo,
			u.username,
			u.email,
			u.tipo_usuario
		FROM pacientes p
		LEFT JOIN usuarios u ON p.usuario_id = u.id
		ORDER BY p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pacientes []*models.Paciente
	for rows.Next() {
		p := &models.Paciente{}
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.HistorialClinico, &p.GrupoSanguineo,
			&p.Alergias, &p.EnfermedadesCronicas, &p.MedicamentosActuales,
			&p.ContactoEmergencia, &p.TelefonoEmergencia,
			&p.NombreCompleto, &p.Username, &p.Email, &p.TipoUsuario); err != nil {
			return nil, err
		}
		pacientes = append(pacientes, p)
	}
	return pacientes, rows.Err()
}
