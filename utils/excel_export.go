package utils

import (
	"bytes"

	"biomedico/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Pacientes"

var exportHeader = []string{
	"paciente_id",
	"nombre",
	"email",
	"username",
	"grupo_sanguineo",
	"alergias",
	"enfermedades_cronicas",
	"medicamentos_actuales",
	"contacto_emergencia",
	"telefono_emergencia",
	"historial_clinico",
}

// BuildPacientesWorkbook renders all patient records into an xlsx
// workbook with a single "Pacientes" sheet.
func BuildPacientesWorkbook(pacientes []*models.Paciente) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, p := range pacientes {
		values := []interface{}{
			p.ID,
			strOrEmpty(p.NombreCompleto),
			strOrEmpty(p.Email),
			strOrEmpty(p.Username),
			p.GrupoSanguineo,
			p.Alergias,
			p.EnfermedadesCronicas,
			p.MedicamentosActuales,
			p.ContactoEmergencia,
			p.TelefonoEmergencia,
			p.HistorialClinico,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
