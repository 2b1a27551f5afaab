package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-erp/atelier-erp/internal/catalog"
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

type fixedEmployees struct {
	rows []catalog.Employee
}

func (f *fixedEmployees) List(ctx context.Context) ([]catalog.Employee, error) {
	return f.rows, nil
}

func (f *fixedEmployees) Create(ctx context.Context, emp catalog.Employee) (catalog.Employee, error) {
	return emp, nil
}

func (f *fixedEmployees) Update(ctx context.Context, id string, emp catalog.Employee) (catalog.Employee, error) {
	return emp, nil
}

func (f *fixedEmployees) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	employees := &fixedEmployees{rows: []catalog.Employee{
		{ID: "3f6d8a2e-0000-4000-8000-000000000001", Name: "Иванов", HourlyRate: 300},
	}}
	catalogService := catalog.NewService(
		catalog.Repositories{Employees: employees},
		catalog.NewCache(nil, time.Minute),
		slog.Default(),
	)
	service := NewService(catalogService, slog.Default())
	handler := NewHandler(slog.Default(), service)

	r := chi.NewRouter()
	r.Route("/boards", handler.MountRoutes)
	return r, service
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeView(t *testing.T, rr *httptest.ResponseRecorder) View {
	t.Helper()
	var v View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestBoardLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/boards/", CreateBoardRequest{Items: []repair.Item{
		poolItem("a", "Ремонт статора_ID_1", 100),
		poolItem("b", "Ремонт статора_ID_2", 150),
		poolItem("c", "Ремонт статора_ID_3", 250),
	}})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	view := decodeView(t, rr)
	require.NotEmpty(t, view.ID)
	boardPath := "/boards/" + view.ID

	rr = doJSON(t, r, http.MethodPost, boardPath+"/positions", CreatePositionRequest{
		GroupKey: "ремонт статора",
		Service:  "Ремонт статора",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	view = decodeView(t, rr)
	require.Len(t, view.Positions, 1)
	pos := view.Positions[0]
	assert.InDelta(t, 500.0, pos.TotalPrice, 1e-9)

	rr = doJSON(t, r, http.MethodPut, fmt.Sprintf("%s/positions/%s/price", boardPath, pos.ID), GroupValueRequest{
		GroupKey: "ремонт статора",
		Value:    "600",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	view = decodeView(t, rr)
	assert.InDelta(t, 600.0, view.Positions[0].TotalPrice, 1e-9)

	rr = doJSON(t, r, http.MethodDelete, fmt.Sprintf("%s/positions/%s", boardPath, pos.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	view = decodeView(t, rr)
	assert.Empty(t, view.Positions)
}

func TestAddEmployeeItemOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/boards/", CreateBoardRequest{Items: []repair.Item{
		poolItem("a", "Ремонт", 100),
	}})
	require.Equal(t, http.StatusCreated, rr.Code)
	view := decodeView(t, rr)
	boardPath := "/boards/" + view.ID

	rr = doJSON(t, r, http.MethodPost, boardPath+"/items/employee", EmployeeItemRequest{
		TemplateRequest: TemplateRequest{SalaryGoods: "Зарплата", WorkType: "Ремонт"},
		EmployeeID:      "3f6d8a2e-0000-4000-8000-000000000001",
		Hours:           4,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	view = decodeView(t, rr)
	require.Len(t, view.Unallocated.Groups, 1)
	assert.Equal(t, "Зарплата", view.Unallocated.Groups[0].SalaryGoods)
	require.Len(t, view.Unallocated.WithoutSalaryGoods, 1)

	rr = doJSON(t, r, http.MethodPost, boardPath+"/items/employee", EmployeeItemRequest{
		TemplateRequest: TemplateRequest{SalaryGoods: "Зарплата"},
		EmployeeID:      "3f6d8a2e-0000-4000-8000-00000000dead",
		Hours:           4,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownBoardIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/boards/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
