// Package weather serves the dashboard's weather widget. wttr.in is the
// primary source; Open-Meteo is the fallback when wttr.in misbehaves, and it
// is also the only source that reports the local timezone. Reports are cached
// in Redis keyed by a geohash of the position, so small GPS drift does not
// defeat the cache.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/redis/go-redis/v9"

	"cardash/internal/config"
	"cardash/internal/types"
)

// ErrUnavailable means both weather sources failed.
var ErrUnavailable = errors.New("weather data unavailable")

// Report is the rendered state of the weather widget.
type Report struct {
	TempC       int    `json:"tempC"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Timezone    string `json:"timezone,omitempty"` // only set by the fallback source
}

const (
	cacheKeyPrefix = "weather:pos:"
	cacheTTL       = 10 * time.Minute
	// ~4.9 km cells; coarse enough to survive in-town driving.
	cacheGeohashPrecision = 5
)

type Client struct {
	primaryURL  string
	fallbackURL string
	httpClient  *http.Client
	redis       *redis.Client // nil disables caching
}

func NewClient(cfg config.WeatherConfig, rdb *redis.Client) *Client {
	return &Client{
		primaryURL:  strings.TrimRight(cfg.PrimaryURL, "/"),
		fallbackURL: strings.TrimRight(cfg.FallbackURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		redis:       rdb,
	}
}

// Current returns the weather at the given position, from cache when fresh.
func (c *Client) Current(ctx context.Context, coord types.Coordinate) (Report, error) {
	key := cacheKeyPrefix + geohash.EncodeWithPrecision(coord.Lat, coord.Lng, cacheGeohashPrecision)

	if c.redis != nil {
		if val, err := c.redis.Get(ctx, key).Result(); err == nil {
			var cached Report
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	report, err := c.fetchPrimary(ctx, coord)
	if err != nil {
		report, err = c.fetchFallback(ctx, coord)
	}
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if c.redis != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = c.redis.Set(ctx, key, data, cacheTTL).Err()
		}
	}
	return report, nil
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherCode string `json:"weatherCode"`
	} `json:"current_condition"`
}

func (c *Client) fetchPrimary(ctx context.Context, coord types.Coordinate) (Report, error) {
	url := fmt.Sprintf("%s/%f,%f?format=j1", c.primaryURL, coord.Lat, coord.Lng)

	var decoded wttrResponse
	if err := c.getJSON(ctx, url, &decoded); err != nil {
		return Report{}, err
	}
	if len(decoded.CurrentCondition) == 0 {
		return Report{}, errors.New("wttr.in: empty current_condition")
	}

	cur := decoded.CurrentCondition[0]
	temp, err := strconv.Atoi(cur.TempC)
	if err != nil {
		return Report{}, fmt.Errorf("wttr.in: temp %q: %v", cur.TempC, err)
	}
	code, err := strconv.Atoi(cur.WeatherCode)
	if err != nil {
		return Report{}, fmt.Errorf("wttr.in: code %q: %v", cur.WeatherCode, err)
	}

	return Report{TempC: temp, Description: describeWWO(code), Icon: iconWWO(code)}, nil
}

type openMeteoResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

func (c *Client) fetchFallback(ctx context.Context, coord types.Coordinate) (Report, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,weather_code&timezone=auto",
		c.fallbackURL, coord.Lat, coord.Lng)

	var decoded openMeteoResponse
	if err := c.getJSON(ctx, url, &decoded); err != nil {
		return Report{}, err
	}

	code := decoded.Current.WeatherCode
	return Report{
		TempC:       int(math.Round(decoded.Current.Temperature)),
		Description: describeWMO(code),
		Icon:        iconWMO(code),
		Timezone:    decoded.Timezone,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
