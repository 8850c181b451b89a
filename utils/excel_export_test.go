package utils

import (
	"testing"

	"biomedico/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildPacientesWorkbook(t *testing.T) {
	nombre := "Ana Pérez"
	email := "ana@clinica.test"

	buf, err := BuildPacientesWorkbook([]*models.Paciente{
		{
			ID:                   1,
			NombreCompleto:       &nombre,
			Email:                &email,
			GrupoSanguineo:       "A-",
			Alergias:             "Penicilina",
			EnfermedadesCronicas: "Ninguna",
			HistorialClinico:     "Control anual",
		},
		{
			ID:             2,
			GrupoSanguineo: "O+",
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, exportSheet, f.GetSheetName(0))

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader, rows[0][:len(exportHeader)])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Ana Pérez", rows[1][1])
	assert.Equal(t, "A-", rows[1][4])

	// Missing owner fields export as blanks, not placeholders.
	assert.Equal(t, "2", rows[2][0])
	if len(rows[2]) > 1 {
		assert.Empty(t, rows[2][1])
	}
}

func TestBuildPacientesWorkbookEmpty(t *testing.T) {
	buf, err := BuildPacientesWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
