package repository

import (
	"biomedico/models"
)

// ReportRepository provides the data needed to render a clinical report.
type ReportRepository struct {
	PacienteRepo   PacienteRepository
	ClinicInfoRepo ClinicInfoRepository
}

// NewReportRepository initializes a report repository
func NewReportRepository(pacienteRepo PacienteRepository, clinicRepo ClinicInfoRepository) *ReportRepository {
	return &ReportRepository{
		PacienteRepo:   pacienteRepo,
		ClinicInfoRepo: clinicRepo,
	}
}

// GetPacienteForReport fetches a single patient by ID for the report
func (r *ReportRepository) GetPacienteForReport(id int64) (*models.Paciente, error) {
	return r.PacienteRepo.GetPacienteByID(id)
}

// GetClinicForReport fetches the clinic letterhead, falling back to a
// default when none is configured so the report always renders.
func (r *ReportRepository) GetClinicForReport() (*models.ClinicInfo, error) {
	info, err := r.ClinicInfoRepo.GetClinicInfo()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &models.ClinicInfo{
			Name:    "BIO-TECH",
			Tagline: "Sistema Biomédico Inteligente",
		}
	}
	return info, nil
}
