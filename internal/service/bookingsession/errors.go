package bookingsession

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnauthorized возвращается, когда токен сессии отсутствует
	ErrUnauthorized = errors.New("session token is missing")

	// ErrAccessDenied возвращается, когда сессия открыта с другим токеном
	ErrAccessDenied = errors.New("access denied")

	// ErrConfirmationNotFound возвращается, когда бронирование еще не подтверждено
	ErrConfirmationNotFound = errors.New("confirmation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrShuttingDown возвращается, когда сервис останавливается и не принимает новые запросы доступности
	ErrShuttingDown = errors.New("service is shutting down")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
