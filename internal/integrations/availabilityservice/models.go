package availabilityservice

// Availability нормализованный ответ сервиса доступности
type Availability struct {
	Date           string
	DayOfWeek      string
	AvailableHours []string
	HasSlots       bool
	Message        string
}

// availabilityEnvelope ответ сервиса: { success, data, message, error }.
// Success - указатель: отсутствующее поле трактуется как успех.
type availabilityEnvelope struct {
	Success *bool             `json:"success"`
	Data    *availabilityData `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
}

// availabilityData поддерживает camelCase и snake_case варианты полей
type availabilityData struct {
	Date              string   `json:"date"`
	DayOfWeek         string   `json:"dayOfWeek"`
	DayOfWeekSnake    string   `json:"day_of_week"`
	AvailableHours    []string `json:"availableHours"`
	AvailableHoursAlt []string `json:"available_hours"`
	HasSlots          *bool    `json:"hasSlots"`
	HasSlotsSnake     *bool    `json:"has_slots"`
}
