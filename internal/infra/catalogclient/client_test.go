//go:build unit

package catalogclient_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/infra"
	"autoparts-pos/internal/infra/catalogclient"
	"autoparts-pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *catalogclient.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return catalogclient.New(server.URL+"/api/", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_CreateOrGet(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var got map[string]any
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/vehicle-models", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(w, http.StatusCreated, map[string]any{"id": "vm-1", "marca": "TOYOTA", "modelo": "YARIS", "anio": 2018})
		})

		m, err := client.CreateOrGet(context.Background(), "TOYOTA", "YARIS", 2018)

		require.NoError(t, err)
		assert.Equal(t, vehicle.Model{ID: "vm-1", Brand: "TOYOTA", Model: "YARIS", Year: 2018}, m)
		assert.Equal(t, map[string]any{"marca": "TOYOTA", "modelo": "YARIS", "anio": float64(2018)}, got)
	})

	t.Run("existing model returned with 200 and partial body", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": "vm-7"})
		})

		m, err := client.CreateOrGet(context.Background(), "TOYOTA", "YARIS", 2019)

		require.NoError(t, err)
		assert.Equal(t, vehicle.Model{ID: "vm-7", Brand: "TOYOTA", Model: "YARIS", Year: 2019}, m)
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadGateway, map[string]any{"error": "down"})
		})

		_, err := client.CreateOrGet(context.Background(), "TOYOTA", "YARIS", 2019)

		require.Error(t, err)
		assert.Equal(t, infra.KindUpstreamUnavailable, adapterKind(t, err))
		assert.True(t, errs.Is(err, errs.ErrCatalogUnavailable))
	})

	t.Run("client error is rejected", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "bad year"})
		})

		_, err := client.CreateOrGet(context.Background(), "TOYOTA", "YARIS", 2019)

		require.Error(t, err)
		assert.Equal(t, infra.KindUpstreamRejected, adapterKind(t, err))
		assert.True(t, errs.Is(err, errs.ErrCatalogRejected))
		assert.False(t, errs.Is(err, errs.ErrCatalogUnavailable))
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]any{"marca": "TOYOTA"})
		})

		_, err := client.CreateOrGet(context.Background(), "TOYOTA", "YARIS", 2019)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCatalogRejected))
	})

	t.Run("timeout is unavailable", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
		})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.CreateOrGet(ctx, "TOYOTA", "YARIS", 2019)

		require.Error(t, err)
		assert.Equal(t, infra.KindUpstreamUnavailable, adapterKind(t, err))
		assert.True(t, errs.Is(err, errs.ErrCatalogUnavailable))
	})
}

func adapterKind(t *testing.T, err error) infra.ErrorKind {
	t.Helper()
	var ae infra.AdapterError
	require.ErrorAs(t, err, &ae)
	return ae.Kind
}
