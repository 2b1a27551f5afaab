package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Cache keys per catalog list. One key per table keeps invalidation
// trivial: any write to a table drops its list.
const (
	employeesKey = "catalog:employees"
	wiresKey     = "catalog:wires"
	motorsKey    = "catalog:motors"
	bearingsKey  = "catalog:bearings"
)

// Service fronts the four catalog repositories with the read-through
// cache the panel session expects.
type Service struct {
	repos  Repositories
	cache  *Cache
	logger *slog.Logger
}

// NewService wires repositories, cache and logging.
func NewService(repos Repositories, cache *Cache, logger *slog.Logger) *Service {
	return &Service{repos: repos, cache: cache, logger: logger}
}

// ListEmployees returns active employees ordered by name.
func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := s.cache.FetchJSON(ctx, employeesKey, &out, func(ctx context.Context) (interface{}, error) {
		return s.repos.Employees.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

// CreateEmployee inserts a catalog row and drops the cached list.
func (s *Service) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	created, err := s.repos.Employees.Create(ctx, emp)
	if err != nil {
		return Employee{}, fmt.Errorf("create employee: %w", err)
	}
	s.cache.Invalidate(ctx, employeesKey)
	return created, nil
}

// UpdateEmployee updates by id, returning the stored row.
func (s *Service) UpdateEmployee(ctx context.Context, id string, emp Employee) (Employee, error) {
	updated, err := s.repos.Employees.Update(ctx, id, emp)
	if err != nil {
		return Employee{}, err
	}
	s.cache.Invalidate(ctx, employeesKey)
	return updated, nil
}

// DeleteEmployee removes a row by id.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.repos.Employees.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, employeesKey)
	return nil
}

// ListWires returns active wires ordered by brand and cross-section.
func (s *Service) ListWires(ctx context.Context) ([]Wire, error) {
	var out []Wire
	err := s.cache.FetchJSON(ctx, wiresKey, &out, func(ctx context.Context) (interface{}, error) {
		return s.repos.Wires.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list wires: %w", err)
	}
	return out, nil
}

// CreateWire inserts a catalog row and drops the cached list.
func (s *Service) CreateWire(ctx context.Context, wire Wire) (Wire, error) {
	created, err := s.repos.Wires.Create(ctx, wire)
	if err != nil {
		return Wire{}, fmt.Errorf("create wire: %w", err)
	}
	s.cache.Invalidate(ctx, wiresKey)
	return created, nil
}

// UpdateWire updates by id, returning the stored row.
func (s *Service) UpdateWire(ctx context.Context, id string, wire Wire) (Wire, error) {
	updated, err := s.repos.Wires.Update(ctx, id, wire)
	if err != nil {
		return Wire{}, err
	}
	s.cache.Invalidate(ctx, wiresKey)
	return updated, nil
}

// DeleteWire removes a row by id.
func (s *Service) DeleteWire(ctx context.Context, id string) error {
	if err := s.repos.Wires.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, wiresKey)
	return nil
}

// ListMotors returns active motors ordered by power and rpm.
func (s *Service) ListMotors(ctx context.Context) ([]Motor, error) {
	var out []Motor
	err := s.cache.FetchJSON(ctx, motorsKey, &out, func(ctx context.Context) (interface{}, error) {
		return s.repos.Motors.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list motors: %w", err)
	}
	return out, nil
}

// FindMotorBySpecs looks up one active motor by its electrical ratings.
// Returns nil without error when no motor matches.
func (s *Service) FindMotorBySpecs(ctx context.Context, powerKW, rpm, voltage float64) (*Motor, error) {
	return s.repos.Motors.FindBySpecs(ctx, powerKW, rpm, voltage)
}

// CreateMotor inserts a catalog row and drops the cached list.
func (s *Service) CreateMotor(ctx context.Context, motor Motor) (Motor, error) {
	created, err := s.repos.Motors.Create(ctx, motor)
	if err != nil {
		return Motor{}, fmt.Errorf("create motor: %w", err)
	}
	s.cache.Invalidate(ctx, motorsKey)
	return created, nil
}

// UpdateMotor updates by id, returning the stored row.
func (s *Service) UpdateMotor(ctx context.Context, id string, motor Motor) (Motor, error) {
	updated, err := s.repos.Motors.Update(ctx, id, motor)
	if err != nil {
		return Motor{}, err
	}
	s.cache.Invalidate(ctx, motorsKey)
	return updated, nil
}

// DeleteMotor removes a row by id.
func (s *Service) DeleteMotor(ctx context.Context, id string) error {
	if err := s.repos.Motors.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, motorsKey)
	return nil
}

// ListBearings returns active bearings ordered by designation.
func (s *Service) ListBearings(ctx context.Context) ([]Bearing, error) {
	var out []Bearing
	err := s.cache.FetchJSON(ctx, bearingsKey, &out, func(ctx context.Context) (interface{}, error) {
		return s.repos.Bearings.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list bearings: %w", err)
	}
	return out, nil
}

// CreateBearing inserts a catalog row and drops the cached list.
func (s *Service) CreateBearing(ctx context.Context, bearing Bearing) (Bearing, error) {
	created, err := s.repos.Bearings.Create(ctx, bearing)
	if err != nil {
		return Bearing{}, fmt.Errorf("create bearing: %w", err)
	}
	s.cache.Invalidate(ctx, bearingsKey)
	return created, nil
}

// UpdateBearing updates by id, returning the stored row.
func (s *Service) UpdateBearing(ctx context.Context, id string, bearing Bearing) (Bearing, error) {
	updated, err := s.repos.Bearings.Update(ctx, id, bearing)
	if err != nil {
		return Bearing{}, err
	}
	s.cache.Invalidate(ctx, bearingsKey)
	return updated, nil
}

// DeleteBearing removes a row by id.
func (s *Service) DeleteBearing(ctx context.Context, id string) error {
	if err := s.repos.Bearings.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, bearingsKey)
	return nil
}
