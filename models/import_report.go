package models

// Outcome of a single imported spreadsheet row.
const (
	ImportCreated   = "created"
	ImportDuplicate = "skipped-duplicate"
	ImportFailed    = "failed"
)

// ImportOutcome records what happened to one row. Row is the spreadsheet
// row number as a user would see it (header row is 1, data starts at 2).
type ImportOutcome struct {
	Row    int    `json:"fila"`
	Status string `json:"estado"`
	Reason string `json:"motivo,omitempty"`
}

// ImportReport aggregates the per-row outcomes of one upload. Outcomes
// holds exactly one entry per input row, in input order.
type ImportReport struct {
	Outcomes          []ImportOutcome `json:"resultados"`
	RegistrosExitosos int             `json:"registrosExitosos"`
	Duplicados        int             `json:"duplicados"`
	Errores           []string        `json:"errores"`
}
