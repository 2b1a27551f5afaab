package catalog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployees struct {
	rows      []Employee
	listCalls int
}

func (s *stubEmployees) List(ctx context.Context) ([]Employee, error) {
	s.listCalls++
	return s.rows, nil
}

func (s *stubEmployees) Create(ctx context.Context, emp Employee) (Employee, error) {
	emp.ID = "created"
	s.rows = append(s.rows, emp)
	return emp, nil
}

func (s *stubEmployees) Update(ctx context.Context, id string, emp Employee) (Employee, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			emp.ID = id
			s.rows[i] = emp
			return emp, nil
		}
	}
	return Employee{}, ErrNotFound
}

func (s *stubEmployees) Delete(ctx context.Context, id string) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService(t *testing.T, employees *stubEmployees) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewCache(client, time.Minute)
	repos := Repositories{Employees: employees}
	return NewService(repos, cache, slog.Default())
}

func TestListEmployeesCaches(t *testing.T) {
	stub := &stubEmployees{rows: []Employee{{ID: "e1", Name: "Иванов", HourlyRate: 300}}}
	svc := newTestService(t, stub)
	ctx := context.Background()

	first, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, stub.listCalls)

	second, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.listCalls, "second list must come from cache")
}

func TestCreateEmployeeInvalidatesCache(t *testing.T) {
	stub := &stubEmployees{rows: []Employee{{ID: "e1", Name: "Иванов", HourlyRate: 300}}}
	svc := newTestService(t, stub)
	ctx := context.Background()

	_, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stub.listCalls)

	_, err = svc.CreateEmployee(ctx, Employee{Name: "Петров", HourlyRate: 250})
	require.NoError(t, err)

	out, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, stub.listCalls, "write must drop the cached list")
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc := newTestService(t, &stubEmployees{})

	_, err := svc.UpdateEmployee(context.Background(), "missing", Employee{Name: "x", HourlyRate: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCacheDegradesWithoutRedis(t *testing.T) {
	stub := &stubEmployees{rows: []Employee{{ID: "e1", Name: "Иванов"}}}
	cache := NewCache(nil, time.Minute)
	svc := NewService(Repositories{Employees: stub}, cache, slog.Default())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := svc.ListEmployees(ctx)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	}
	assert.Equal(t, 2, stub.listCalls, "nil client reads straight through")
}

func TestCacheSurvivesRedisOutage(t *testing.T) {
	stub := &stubEmployees{rows: []Employee{{ID: "e1", Name: "Иванов"}}}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewService(Repositories{Employees: stub}, NewCache(client, time.Minute), slog.Default())

	mr.SetError("connection refused")

	out, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 1, stub.listCalls)
}
