package usecase

import (
	"context"
	"fmt"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateRealtorUseCase struct {
	realtors port.RealtorStoragePort
}

func NewCreateRealtorUseCase(realtors port.RealtorStoragePort) *CreateRealtorUseCase {
	return &CreateRealtorUseCase{realtors: realtors}
}

// Execute создает риэлтора. ФИО обязательно целиком; доля комиссии,
// если задана, ограничивается диапазоном [0, 100] именно здесь -
// калькулятор комиссий значение не проверяет.
func (uc *CreateRealtorUseCase) Execute(ctx context.Context, params domain.CreateRealtorParams) (*domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateRealtor"})

	if params.LastName == "" || params.FirstName == "" || params.MiddleName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrValidation)
	}
	if params.CommissionShare != nil && (*params.CommissionShare < 0 || *params.CommissionShare > 100) {
		return nil, fmt.Errorf("%w: commission share must be within [0, 100]", domain.ErrValidation)
	}

	realtor := domain.Realtor{
		ID:              uuid.New(),
		LastName:        params.LastName,
		FirstName:       params.FirstName,
		MiddleName:      params.MiddleName,
		CommissionShare: params.CommissionShare,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.realtors.Create(ctx, realtor); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Realtor created", port.Fields{"realtor_id": realtor.ID.String()})
	return &realtor, nil
}
