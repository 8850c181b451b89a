package repository

import "biomedico/models"

// ClinicInfoRepository stores the clinic letterhead used on HTML pages
// and the PDF report.
type ClinicInfoRepository interface {
	SaveClinicInfo(info *models.ClinicInfo) error
	// GetClinicInfo returns the latest letterhead, or (nil, nil) when
	// none has been configured.
	GetClinicInfo() (*models.ClinicInfo, error)
}
