package weather

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchParsesDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "52.5200", r.URL.Query().Get("latitude"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily":{"precipitation_sum":[4.2],"temperature_2m_max":[21.5]}}`))
	}))
	defer srv.Close()

	f, err := New(srv.URL).Fetch(52.52, 13.405)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, f.RainMM24h, 0.001)
	assert.InDelta(t, 21.5, f.MaxTempC, 0.001)
	assert.True(t, f.WillRain)
}

func TestFetchLightRainIsNotRain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily":{"precipitation_sum":[0.3],"temperature_2m_max":[18.0]}}`))
	}))
	defer srv.Close()

	f, err := New(srv.URL).Fetch(48.85, 2.35)
	require.NoError(t, err)
	assert.False(t, f.WillRain, "below 1 mm is drizzle, watering still needed")
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Fetch(0, 0)
	require.Error(t, err)
}

func TestFetchEmptyDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily":{}}`))
	}))
	defer srv.Close()

	f, err := New(srv.URL).Fetch(0, 0)
	require.NoError(t, err)
	assert.False(t, f.WillRain)
	assert.Zero(t, f.RainMM24h)
}
