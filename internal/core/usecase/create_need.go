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

type CreateNeedUseCase struct {
	needs    port.NeedStoragePort
	clients  port.ClientStoragePort
	realtors port.RealtorStoragePort
}

func NewCreateNeedUseCase(needs port.NeedStoragePort, clients port.ClientStoragePort,
	realtors port.RealtorStoragePort) *CreateNeedUseCase {
	return &CreateNeedUseCase{needs: needs, clients: clients, realtors: realtors}
}

// Execute создает потребность покупателя. Клиент и риэлтор должны
// существовать; детали должны соответствовать желаемому типу объекта.
func (uc *CreateNeedUseCase) Execute(ctx context.Context, params domain.CreateNeedParams) (*domain.Need, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateNeed"})

	if err := validateNeedParams(params); err != nil {
		return nil, err
	}

	if _, err := uc.clients.GetByID(ctx, params.ClientID); err != nil {
		return nil, fmt.Errorf("client %s: %w", params.ClientID, err)
	}
	if _, err := uc.realtors.GetByID(ctx, params.RealtorID); err != nil {
		return nil, fmt.Errorf("realtor %s: %w", params.RealtorID, err)
	}

	need := domain.Need{
		ID:           uuid.New(),
		ClientID:     params.ClientID,
		RealtorID:    params.RealtorID,
		PropertyType: params.PropertyType,
		Address:      params.Address,
		PriceRange:   params.PriceRange,
		Details:      params.Details,
		Status:       domain.NeedStatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.needs.Create(ctx, need); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Need created", port.Fields{"need_id": need.ID.String()})
	return &need, nil
}

func validateNeedParams(params domain.CreateNeedParams) error {
	switch params.PropertyType {
	case domain.PropertyTypeApartment, domain.PropertyTypeHouse, domain.PropertyTypeLand:
	default:
		return fmt.Errorf("%w: unknown property type %q", domain.ErrValidation, params.PropertyType)
	}

	// Детали опциональны, но если заданы - тип должен совпадать.
	switch params.Details.(type) {
	case nil:
	case *domain.ApartmentNeedDetails:
		if params.PropertyType != domain.PropertyTypeApartment {
			return fmt.Errorf("%w: details do not match property type", domain.ErrValidation)
		}
	case *domain.HouseNeedDetails:
		if params.PropertyType != domain.PropertyTypeHouse {
			return fmt.Errorf("%w: details do not match property type", domain.ErrValidation)
		}
	case *domain.LandNeedDetails:
		if params.PropertyType != domain.PropertyTypeLand {
			return fmt.Errorf("%w: details do not match property type", domain.ErrValidation)
		}
	}

	if r := params.PriceRange; r != nil && r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: price range min exceeds max", domain.ErrValidation)
	}

	return nil
}
