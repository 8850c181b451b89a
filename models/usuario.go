package models

import "time"

// Roles a user account can hold. They gate every protected route.
const (
	RolAdmin        = "admin"
	RolMedico       = "medico"
	RolInvestigador = "investigador"
	RolPaciente     = "paciente"
)

type Usuario struct {
	ID             int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Username       string    `json:"username" bson:"username" db:"username"`
	Password       string    `json:"-" bson:"password" db:"password"`
	TipoUsuario    string    `json:"tipo_usuario" bson:"tipo_usuario" db:"tipo_usuario"`
	NombreCompleto string    `json:"nombre_completo" bson:"nombre_completo" db:"nombre_completo"`
	Email          *string   `json:"email,omitempty" bson:"email,omitempty" db:"email"`
	FechaRegistro  time.Time `json:"fecha_registro" bson:"fecha_registro" db:"fecha_registro"`
}
