package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Forecast is the slice of the provider response the app cares about:
// whether rain makes outdoor watering pointless in the next day.
type Forecast struct {
	RainMM24h float64 `json:"rain_mm_24h"`
	MaxTempC  float64 `json:"max_temp_c"`
	WillRain  bool    `json:"will_rain"`
}

type Client struct {
	endpoint string
	httpc    *http.Client
}

func New(endpoint string) *Client {
	return &Client{endpoint: endpoint, httpc: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch queries an open-meteo style forecast API. Advisory only: callers
// must treat errors as "no forecast", never as a reason to block care.
func (c *Client) Fetch(lat, lon float64) (*Forecast, error) {
	u := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&daily=precipitation_sum,temperature_2m_max&forecast_days=1&timezone=auto",
		strings.TrimRight(c.endpoint, "/"), lat, lon)
	resp, err := c.httpc.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: status %d", resp.StatusCode)
	}

	var out struct {
		Daily struct {
			PrecipitationSum []float64 `json:"precipitation_sum"`
			TemperatureMax   []float64 `json:"temperature_2m_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	f := &Forecast{}
	if len(out.Daily.PrecipitationSum) > 0 {
		f.RainMM24h = out.Daily.PrecipitationSum[0]
		f.WillRain = f.RainMM24h >= 1.0
	}
	if len(out.Daily.TemperatureMax) > 0 {
		f.MaxTempC = out.Daily.TemperatureMax[0]
	}
	return f, nil
}
