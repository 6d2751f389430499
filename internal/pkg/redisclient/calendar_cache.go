package redisclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"sevenfour/internal/entities"
)

// CalendarCache keeps the month capacity view in Redis for a short TTL.
// It only serves the read-only calendar endpoint; booking decisions always
// count in Postgres.
type CalendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCalendarCache(client *redis.Client, ttl time.Duration) *CalendarCache {
	return &CalendarCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Max   int    `json:"max"`
}

func (c *CalendarCache) GetCalendar(ctx context.Context, year int, month time.Month) ([]entities.CapacityDay, bool, error) {
	raw, err := c.client.Get(ctx, calendarKey(year, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("unexpected calendar cache get error: %w", err)
	}

	var cached []cachedDay
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("unexpected calendar cache decode error: %w", err)
	}

	days := make([]entities.CapacityDay, len(cached))
	for i, d := range cached {
		date, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			return nil, false, fmt.Errorf("unexpected calendar cache decode error: %w", err)
		}
		days[i] = entities.CapacityDay{
			Date:  date,
			Count: d.Count,
			Max:   d.Max,
		}
	}

	return days, true, nil
}

func (c *CalendarCache) SetCalendar(ctx context.Context, year int, month time.Month, days []entities.CapacityDay) error {
	cached := make([]cachedDay, len(days))
	for i, d := range days {
		cached[i] = cachedDay{
			Date:  d.Date.Format(time.DateOnly),
			Count: d.Count,
			Max:   d.Max,
		}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("unexpected calendar cache encode error: %w", err)
	}

	err = c.client.Set(ctx, calendarKey(year, month), raw, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("unexpected calendar cache set error: %w", err)
	}

	return nil
}

func calendarKey(year int, month time.Month) string {
	return fmt.Sprintf("delivery:calendar:%04d-%02d", year, int(month))
}
