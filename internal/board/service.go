package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atelier-erp/atelier-erp/internal/catalog"
	"github.com/atelier-erp/atelier-erp/internal/repair"
)

// ErrBoardNotFound reports an unknown session id.
var ErrBoardNotFound = fmt.Errorf("board: session not found")

// Service holds the editing sessions in memory. Boards live for the
// lifetime of the process; the mutex serializes overlapping HTTP requests
// against the same map, nothing more.
type Service struct {
	mu       sync.Mutex
	boards   map[string]*Board
	catalogs *catalog.Service
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the session store and catalog lookups.
func NewService(catalogs *catalog.Service, logger *slog.Logger) *Service {
	return &Service{
		boards:   make(map[string]*Board),
		catalogs: catalogs,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateBoard opens a session seeded with the uploaded raw pool.
func (s *Service) CreateBoard(items []repair.Item) *Board {
	b := New(items)
	s.mu.Lock()
	s.boards[b.ID] = b
	s.mu.Unlock()
	s.logger.Info("board created", slog.String("board_id", b.ID), slog.Int("items", len(items)))
	return b
}

// GetBoard fetches a session by id.
func (s *Service) GetBoard(id string) (*Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return nil, ErrBoardNotFound
	}
	return b, nil
}

// CloseBoard drops a session.
func (s *Service) CloseBoard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return ErrBoardNotFound
	}
	delete(s.boards, id)
	return nil
}

// Snapshot renders a session view under the store lock, so a concurrent
// mutation never interleaves with the read.
func (s *Service) Snapshot(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return View{}, ErrBoardNotFound
	}
	return Snapshot(b), nil
}

// WithBoard runs fn against the session under the store lock.
func (s *Service) WithBoard(id string, fn func(*Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return ErrBoardNotFound
	}
	return fn(b)
}

// AddTemplate drops a blank template card into the pool of the given
// category and work-type bucket.
func (s *Service) AddTemplate(boardID, salaryGoods, workType string) (repair.Item, error) {
	item := repair.NewTemplateItem(salaryGoods, workType, s.now())
	err := s.WithBoard(boardID, func(b *Board) error {
		b.AddToPool(item)
		return nil
	})
	return item, err
}

// AddManualItem renames a template context into a user-chosen line.
func (s *Service) AddManualItem(boardID, salaryGoods, workType, name string) (repair.Item, error) {
	tpl := repair.NewTemplateItem(salaryGoods, workType, s.now())
	item, err := repair.Rename(tpl, name)
	if err != nil {
		return repair.Item{}, err
	}
	err = s.WithBoard(boardID, func(b *Board) error {
		b.AddToPool(item)
		return nil
	})
	return item, err
}

// AddEmployeeItem synthesizes a labor line from the employee catalog.
// Labor always lands as an expense so the card classifies and its hours
// stay editable.
func (s *Service) AddEmployeeItem(ctx context.Context, boardID, salaryGoods, workType, employeeID string, hours float64) (repair.Item, error) {
	emp, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return repair.Item{}, err
	}
	tpl := repair.NewTemplateItem(salaryGoods, workType, s.now())
	tpl.IncomeExpenseType = repair.TypeExpense
	item, err := repair.SynthesizeEmployee(tpl, emp, hours)
	if err != nil {
		return repair.Item{}, err
	}
	err = s.WithBoard(boardID, func(b *Board) error {
		b.AddToPool(item)
		return nil
	})
	return item, err
}

// AddWireItem synthesizes a material line from the wire catalog.
func (s *Service) AddWireItem(ctx context.Context, boardID, salaryGoods, workType, wireID string, length float64) (repair.Item, error) {
	wire, err := s.findWire(ctx, wireID)
	if err != nil {
		return repair.Item{}, err
	}
	tpl := repair.NewTemplateItem(salaryGoods, workType, s.now())
	tpl.IncomeExpenseType = repair.TypeExpense
	item, err := repair.SynthesizeWire(tpl, wire, length)
	if err != nil {
		return repair.Item{}, err
	}
	err = s.WithBoard(boardID, func(b *Board) error {
		b.AddToPool(item)
		return nil
	})
	return item, err
}

// AddMotorItem synthesizes a parts line from the motor catalog.
func (s *Service) AddMotorItem(ctx context.Context, boardID, salaryGoods, workType, motorID string, qty float64) (repair.Item, error) {
	motor, err := s.findMotor(ctx, motorID)
	if err != nil {
		return repair.Item{}, err
	}
	tpl := repair.NewTemplateItem(salaryGoods, workType, s.now())
	tpl.IncomeExpenseType = repair.TypeExpense
	item, err := repair.SynthesizeMotor(tpl, motor, qty)
	if err != nil {
		return repair.Item{}, err
	}
	err = s.WithBoard(boardID, func(b *Board) error {
		b.AddToPool(item)
		return nil
	})
	return item, err
}

// AddBearingItem synthesizes a consumable line from the bearing catalog.
func (s *Service) AddBearingItem(ctx context.Context, boardID, salaryGoods, workType, bearingID string, qty float64) (repair.Item, error) {
	bearing, err := s.findBearing(ctx, bearingID)
	if err != nil {
		return repair.Item{}, err
	}
	tpl := repair.NewTemplateItem(salaryGoods, workType, s.now())
	tpl.IncomeExpenseType = repair.TypeExpense
	item, err := repair.SynthesizeBearing(tpl, bearing, qty)
	if err != nil {
		return repair.Item{}, err
	}
	err = s.WithBoard(boardID, func(b *Board) error {
		b.AddToPool(item)
		return nil
	})
	return item, err
}

// Catalog rows come through the cached lists, so synthesis never issues
// its own SQL.

func (s *Service) findEmployee(ctx context.Context, id string) (catalog.Employee, error) {
	list, err := s.catalogs.ListEmployees(ctx)
	if err != nil {
		return catalog.Employee{}, err
	}
	for _, e := range list {
		if e.ID == id {
			return e, nil
		}
	}
	return catalog.Employee{}, catalog.ErrNotFound
}

func (s *Service) findWire(ctx context.Context, id string) (catalog.Wire, error) {
	list, err := s.catalogs.ListWires(ctx)
	if err != nil {
		return catalog.Wire{}, err
	}
	for _, w := range list {
		if w.ID == id {
			return w, nil
		}
	}
	return catalog.Wire{}, catalog.ErrNotFound
}

func (s *Service) findMotor(ctx context.Context, id string) (catalog.Motor, error) {
	list, err := s.catalogs.ListMotors(ctx)
	if err != nil {
		return catalog.Motor{}, err
	}
	for _, m := range list {
		if m.ID == id {
			return m, nil
		}
	}
	return catalog.Motor{}, catalog.ErrNotFound
}

func (s *Service) findBearing(ctx context.Context, id string) (catalog.Bearing, error) {
	list, err := s.catalogs.ListBearings(ctx)
	if err != nil {
		return catalog.Bearing{}, err
	}
	for _, b := range list {
		if b.ID == id {
			return b, nil
		}
	}
	return catalog.Bearing{}, catalog.ErrNotFound
}
