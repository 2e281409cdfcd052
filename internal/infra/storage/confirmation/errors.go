package confirmation

import "errors"

var (
	// ErrConfirmationNotFound возвращается, когда подтверждение не найдено
	ErrConfirmationNotFound = errors.New("confirmation.repository: confirmation not found")

	// ErrAlreadyExists возвращается, когда для сессии уже записано подтверждение
	ErrAlreadyExists = errors.New("confirmation.repository: confirmation already exists for session")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("confirmation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("confirmation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("confirmation.repository: failed to scan row")
)
