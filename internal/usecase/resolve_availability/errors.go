package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrLookupFailed возвращается, когда сервис доступности не ответил успешно.
	// Для отображения равносильно отсутствию слотов.
	ErrLookupFailed = errors.New("resolve_availability: availability lookup failed")
)
