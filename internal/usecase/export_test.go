package usecase

import "time"

// SetNow overrides the reporting clock from external test packages.
func SetNow(u *ReportingUseCase, now func() time.Time) {
	u.now = now
}
