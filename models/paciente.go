package models

type Paciente struct {
	ID                   int64   `json:"id" bson:"_id,omitempty" db:"id"`
	UsuarioID            *int64  `json:"usuario_id,omitempty" bson:"usuario_id,omitempty" db:"usuario_id"`
	HistorialClinico     string  `json:"historial_clinico" bson:"historial_clinico" db:"historial_clinico"`
	GrupoSanguineo       string  `json:"grupo_sanguineo" bson:"grupo_sanguineo" db:"grupo_sanguineo"`
	Alergias             string  `json:"alergias" bson:"alergias" db:"alergias"`
	EnfermedadesCronicas string  `json:"enfermedades_cronicas" bson:"enfermedades_cronicas" db:"enfermedades_cronicas"`
	MedicamentosActuales string  `json:"medicamentos_actuales" bson:"medicamentos_actuales" db:"medicamentos_actuales"`
	ContactoEmergencia   string  `json:"contacto_emergencia" bson:"contacto_emergencia" db:"contacto_emergencia"`
	TelefonoEmergencia   string  `json:"telefono_emergencia" bson:"telefono_emergencia" db:"telefono_emergencia"`

	// Denormalized user fields for responses (populated on joins).
	NombreCompleto *string `json:"nombre_completo,omitempty" bson:"nombre_completo,omitempty"`
	Username       *string `json:"username,omitempty" bson:"username,omitempty"`
	Email          *string `json:"email,omitempty" bson:"email,omitempty"`
	TipoUsuario    *string `json:"tipo_usuario,omitempty" bson:"tipo_usuario,omitempty"`
}

// PacienteResumen is the trimmed row returned by the patient search.
type PacienteResumen struct {
	ID               int64   `json:"id" bson:"_id,omitempty"`
	Nombre           *string `json:"nombre" bson:"nombre"`
	Email            *string `json:"email" bson:"email"`
	HistorialClinico string  `json:"historial_clinico" bson:"historial_clinico"`
	GrupoSanguineo   string  `json:"grupo_sanguineo" bson:"grupo_sanguineo"`
}
