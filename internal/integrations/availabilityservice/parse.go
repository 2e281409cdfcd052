package availabilityservice

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxErrorBodyLen = 256

// ParseAvailabilityResponse нормализует ответ сервиса доступности.
// Вся терпимость к вариантам имен полей сосредоточена здесь.
func ParseAvailabilityResponse(statusCode int, body []byte) (*Availability, error) {
	var envelope availabilityEnvelope
	decodeErr := json.Unmarshal(body, &envelope)

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		msg := ""
		if decodeErr == nil {
			msg = firstNonEmpty(envelope.Message, envelope.Error)
		}
		if msg == "" {
			msg = truncate(strings.TrimSpace(string(body)), maxErrorBodyLen)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnsuccessful, statusCode, msg)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, decodeErr)
	}

	if envelope.Success != nil && !*envelope.Success {
		return nil, fmt.Errorf("%w: %s", ErrUnsuccessful, firstNonEmpty(envelope.Message, envelope.Error, "success=false"))
	}

	result := &Availability{
		AvailableHours: []string{},
		Message:        envelope.Message,
	}

	if envelope.Data == nil {
		return result, nil
	}

	data := envelope.Data
	result.Date = data.Date
	result.DayOfWeek = firstNonEmpty(data.DayOfWeek, data.DayOfWeekSnake)

	switch {
	case data.AvailableHours != nil:
		result.AvailableHours = data.AvailableHours
	case data.AvailableHoursAlt != nil:
		result.AvailableHours = data.AvailableHoursAlt
	}

	switch {
	case data.HasSlots != nil:
		result.HasSlots = *data.HasSlots
	case data.HasSlotsSnake != nil:
		result.HasSlots = *data.HasSlotsSnake
	default:
		result.HasSlots = len(result.AvailableHours) > 0
	}

	return result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Не режем посреди многобайтового символа
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
