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

type CreateClientUseCase struct {
	clients port.ClientStoragePort
}

func NewCreateClientUseCase(clients port.ClientStoragePort) *CreateClientUseCase {
	return &CreateClientUseCase{clients: clients}
}

// Execute создает клиента. У валидного клиента должен быть указан
// хотя бы один контакт (телефон или email) корректного формата.
func (uc *CreateClientUseCase) Execute(ctx context.Context, params domain.CreateClientParams) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateClient"})

	hasPhone := params.Phone != nil && *params.Phone != ""
	hasEmail := params.Email != nil && *params.Email != ""
	if !hasPhone && !hasEmail {
		return nil, fmt.Errorf("%w: phone or email is required", domain.ErrValidation)
	}
	if hasPhone && !domain.ValidPhone(*params.Phone) {
		return nil, fmt.Errorf("%w: invalid phone format", domain.ErrValidation)
	}
	if hasEmail && !domain.ValidEmail(*params.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}

	client := domain.Client{
		ID:         uuid.New(),
		LastName:   params.LastName,
		FirstName:  params.FirstName,
		MiddleName: params.MiddleName,
		Phone:      params.Phone,
		Email:      params.Email,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.clients.Create(ctx, client); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Client created", port.Fields{"client_id": client.ID.String()})
	return &client, nil
}
