package availabilityservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (не удалось собрать запрос)
	ErrInternal = errors.New("availabilityservice client: internal error")

	// ErrTransport возвращается, когда сервис недоступен (сеть, timeout, отмена контекста)
	ErrTransport = errors.New("availabilityservice client: transport failure")

	// ErrUnsuccessful возвращается при не-2xx ответе или success=false
	ErrUnsuccessful = errors.New("availabilityservice client: lookup unsuccessful")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("availabilityservice client: invalid response")
)
