package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/partidos/partidos-service/internal/status"
	"github.com/partidos/partidos-service/internal/status/repository"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler_List(t *testing.T) {
	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.Insert(context.Background(), &status.Record{
		Subscription: status.Subscription{Plan: "Free", End: "2027-01-01T00:00:00+00:00", Active: true},
		Requests:     status.Requests{Current: 3, LimitDay: 100},
	}))

	g := gin.New()
	RegisterRoutes(g, repo)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, float64(100), out[0]["requests"].(map[string]any)["limit_day"])
	require.Equal(t, "Free", out[0]["subscription"].(map[string]any)["plan"])
}

type failingRepo struct{ repository.Repository }

func (failingRepo) List(ctx context.Context) ([]*status.Record, error) {
	return nil, errors.New("boom")
}

func TestStatusHandler_StoreFailure(t *testing.T) {
	g := gin.New()
	RegisterRoutes(g, failingRepo{})

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Error al obtener los datos")
}
