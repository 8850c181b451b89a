package repository

import "biomedico/models"

// PacienteRepository defines the interface for patient record operations.
type PacienteRepository interface {
	// CreatePaciente inserts the record and sets p.ID. Optional fields
	// are stored as given; callers default them before insert.
	CreatePaciente(p *models.Paciente) error
	// GetPacienteByID returns the patient joined with its owning user,
	// or (nil, nil) when the id does not exist.
	GetPacienteByID(id int64) (*models.Paciente, error)
	// SearchPacientes filters by free text across name, username, email,
	// id and clinical history. When ownerUserID is set only patients
	// owned by that user are returned. Capped at 50 rows, newest first.
	SearchPacientes(q string, ownerUserID *int64) ([]*models.PacienteResumen, error)
	// GetAllPacientes returns every patient joined with its owning user,
	// newest first, with placeholder strings for missing fields.
	GetAllPacientes() ([]*models.Paciente, error)
}
