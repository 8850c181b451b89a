package models

// ReportData is the view model handed to the clinical report template.
type ReportData struct {
	Clinic      *ClinicInfo
	Paciente    *Paciente
	Date        string
	GeneratedBy string
}
