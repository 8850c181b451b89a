package models

import "time"

type EnsayoClinico struct {
	ID          int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Titulo      string    `json:"titulo" bson:"titulo" db:"titulo"`
	Description *string   `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	FechaInicio *string   `json:"fecha_inicio,omitempty" bson:"fecha_inicio,omitempty" db:"fecha_inicio"`
	FechaFin    *string   `json:"fecha_fin,omitempty" bson:"fecha_fin,omitempty" db:"fecha_fin"`
	Estado      string    `json:"estado" bson:"estado" db:"estado"`
	UsuarioID   *int64    `json:"usuario_id,omitempty" bson:"usuario_id,omitempty" db:"usuario_id"`
	CreadoEn    time.Time `json:"creado_en" bson:"creado_en" db:"creado_en"`

	// Creator fields for responses (populated on joins).
	CreadoPor      *string `json:"creado_por,omitempty" bson:"creado_por,omitempty"`
	NombreCompleto *string `json:"nombre_completo,omitempty" bson:"nombre_completo,omitempty"`
}
