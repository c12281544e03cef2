package usecase

import (
	"errors"

	"brokerage-service/internal/core/domain"
)

// orNil превращает ErrNotFound в nil-ссылку: битая ссылка на сущность
// не считается ошибкой, экран покажет "не найдено".
func orNil[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
