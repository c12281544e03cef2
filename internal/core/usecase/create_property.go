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

type CreatePropertyUseCase struct {
	properties port.PropertyStoragePort
}

func NewCreatePropertyUseCase(properties port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties}
}

// Execute создает объект недвижимости. Детали должны соответствовать
// типу объекта, координаты - попадать в допустимые диапазоны.
// Перед сохранением проверяем, нет ли в базе похожего объекта:
// дубликат не блокирует создание, но возвращается в ответе.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, params domain.CreatePropertyParams) (*domain.PropertyCreated, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"type":     params.Type,
	})

	if err := validatePropertyParams(params); err != nil {
		return nil, err
	}

	property := domain.Property{
		ID:          uuid.New(),
		Type:        params.Type,
		Address:     params.Address,
		Coordinates: params.Coordinates,
		Details:     params.Details,
		CreatedAt:   time.Now().UTC(),
	}

	duplicateID, err := uc.properties.FindSimilar(ctx, property)
	if err != nil {
		ucLogger.Error("Duplicate lookup failed", err, nil)
		return nil, err
	}
	if duplicateID != nil {
		ucLogger.Warn("Possible duplicate property", port.Fields{"duplicate_id": duplicateID.String()})
	}

	if err := uc.properties.Create(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Property created", port.Fields{"property_id": property.ID.String()})
	return &domain.PropertyCreated{Property: property, PossibleDuplicateID: duplicateID}, nil
}

func validatePropertyParams(params domain.CreatePropertyParams) error {
	switch params.Type {
	case domain.PropertyTypeApartment, domain.PropertyTypeHouse, domain.PropertyTypeLand:
	default:
		return fmt.Errorf("%w: unknown property type %q", domain.ErrValidation, params.Type)
	}

	// Детали обязаны соответствовать типу объекта.
	switch params.Details.(type) {
	case *domain.ApartmentDetails:
		if params.Type != domain.PropertyTypeApartment {
			return fmt.Errorf("%w: details do not match property type", domain.ErrValidation)
		}
	case *domain.HouseDetails:
		if params.Type != domain.PropertyTypeHouse {
			return fmt.Errorf("%w: details do not match property type", domain.ErrValidation)
		}
	case *domain.LandDetails:
		if params.Type != domain.PropertyTypeLand {
			return fmt.Errorf("%w: details do not match property type", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: property details are required", domain.ErrValidation)
	}

	if c := params.Coordinates; c != nil {
		if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
			return fmt.Errorf("%w: latitude must be within [-90, 90]", domain.ErrValidation)
		}
		if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
			return fmt.Errorf("%w: longitude must be within [-180, 180]", domain.ErrValidation)
		}
	}

	return nil
}
