package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type duplicateEmployees struct {
	stubEmployees
}

func (s *duplicateEmployees) Create(ctx context.Context, emp Employee) (Employee, error) {
	return Employee{}, ErrDuplicate
}

func newTestRouter(t *testing.T, employees Employees) http.Handler {
	t.Helper()
	svc := NewService(Repositories{Employees: employees}, NewCache(nil, time.Minute), slog.Default())
	h := NewHandler(slog.Default(), svc)

	r := chi.NewRouter()
	r.Route("/catalogs", h.MountRoutes)
	return r
}

func TestCreateDuplicateEmployeeConflicts(t *testing.T) {
	router := newTestRouter(t, &duplicateEmployees{})

	body := `{"name":"Иванов","hourly_rate":300}`
	req := httptest.NewRequest(http.MethodPost, "/catalogs/employees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}
