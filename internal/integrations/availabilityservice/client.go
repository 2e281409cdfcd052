package availabilityservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseSize = 1 << 20

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом доступности талантов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса доступности
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailability получает свободные часы таланта на дату (YYYY-MM-DD).
// token передается как Bearer, если не пустой.
func (c *Client) GetAvailability(ctx context.Context, token, talentID, date string) (*Availability, error) {
	query := url.Values{}
	query.Set("talentId", talentID)
	query.Set("startDate", date)
	endpoint := fmt.Sprintf("%s/availability?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	availability, err := ParseAvailabilityResponse(resp.StatusCode, body)
	if err != nil {
		c.log.Warn("Availability lookup failed: talent_id=%s, date=%s, status=%d: %v",
			talentID, date, resp.StatusCode, err)
		return nil, err
	}

	c.log.Info("Availability fetched: talent_id=%s, date=%s, hours=%d",
		talentID, date, len(availability.AvailableHours))
	return availability, nil
}
