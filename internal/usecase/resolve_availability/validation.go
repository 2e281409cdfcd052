package resolve_availability

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TalentID) == "" {
		return fmt.Errorf("%w: talentID is required", ErrInvalidInput)
	}

	if req.Month.Year < 1 || req.Month.Month < 1 || req.Month.Month > 12 {
		return fmt.Errorf("%w: invalid month %d-%d", ErrInvalidInput, req.Month.Year, req.Month.Month)
	}

	if !req.Month.Contains(req.Day) {
		return fmt.Errorf("%w: day %d is not in %s", ErrInvalidInput, req.Day, req.Month)
	}

	return nil
}
