package usecase

import "github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"

func (uc *DefaultValidationUsecase) GetValidationsByUser(userID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return uc.ValidationRepo.GetRecordsByUser(userID, filter)
}

func (uc *DefaultValidationUsecase) GetValidationsByEstablishment(establishmentID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return uc.ValidationRepo.GetRecordsByEstablishment(establishmentID, filter)
}

func (uc *DefaultValidationUsecase) GetMonthlyCounts(establishmentID string, year int) ([]*domain.MonthlyValidationCount, error) {
	return uc.ValidationRepo.GetMonthlyCounts(establishmentID, year)
}
