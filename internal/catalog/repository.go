package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when an update or delete targets a missing row.
var ErrNotFound = errors.New("catalog: record not found")

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("catalog: duplicate record")

// mapConstraint translates a unique-violation PgError into ErrDuplicate
// and passes everything else through.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

// Employees is the persistence contract for the employee catalog.
type Employees interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, id string, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}

// Wires is the persistence contract for the wire catalog.
type Wires interface {
	List(ctx context.Context) ([]Wire, error)
	Create(ctx context.Context, wire Wire) (Wire, error)
	Update(ctx context.Context, id string, wire Wire) (Wire, error)
	Delete(ctx context.Context, id string) error
}

// Motors is the persistence contract for the motor catalog.
type Motors interface {
	List(ctx context.Context) ([]Motor, error)
	FindBySpecs(ctx context.Context, powerKW, rpm, voltage float64) (*Motor, error)
	Create(ctx context.Context, motor Motor) (Motor, error)
	Update(ctx context.Context, id string, motor Motor) (Motor, error)
	Delete(ctx context.Context, id string) error
}

// Bearings is the persistence contract for the bearing catalog.
type Bearings interface {
	List(ctx context.Context) ([]Bearing, error)
	Create(ctx context.Context, bearing Bearing) (Bearing, error)
	Update(ctx context.Context, id string, bearing Bearing) (Bearing, error)
	Delete(ctx context.Context, id string) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repositories bundles the four catalog repositories over one pool.
type Repositories struct {
	Employees Employees
	Wires     Wires
	Motors    Motors
	Bearings  Bearings
}

// NewRepositories wires pgx-backed repositories for every catalog.
func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Employees: &employeeRepo{db: pool},
		Wires:     &wireRepo{db: pool},
		Motors:    &motorRepo{db: pool},
		Bearings:  &bearingRepo{db: pool},
	}
}

type employeeRepo struct {
	db dbtx
}

const employeeColumns = "id, name, hourly_rate, description, is_active, created_at, updated_at"

func (r *employeeRepo) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		"SELECT %s FROM employees WHERE is_active = true ORDER BY name", employeeColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (r *employeeRepo) Create(ctx context.Context, emp Employee) (Employee, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO employees (name, hourly_rate, description, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING %s`, employeeColumns),
		emp.Name, emp.HourlyRate, emp.Description)
	out, err := scanEmployee(row)
	if err != nil {
		return Employee{}, mapConstraint(err)
	}
	return out, nil
}

func (r *employeeRepo) Update(ctx context.Context, id string, emp Employee) (Employee, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE employees
		SET name = $2, hourly_rate = $3, description = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, employeeColumns),
		id, emp.Name, emp.HourlyRate, emp.Description, emp.IsActive)
	out, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return out, mapConstraint(err)
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	var rate pgtype.Numeric
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&emp.ID, &emp.Name, &rate, &emp.Description, &emp.IsActive, &createdAt, &updatedAt); err != nil {
		return Employee{}, err
	}
	emp.HourlyRate = numericFloat(rate)
	emp.CreatedAt = createdAt.Time
	emp.UpdatedAt = updatedAt.Time
	return emp, nil
}

type wireRepo struct {
	db dbtx
}

const wireColumns = "id, brand, cross_section, insulation_type, voltage_rating, price_per_meter, description, is_active, created_at, updated_at"

func (r *wireRepo) List(ctx context.Context) ([]Wire, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		"SELECT %s FROM wires WHERE is_active = true ORDER BY brand, cross_section", wireColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Wire
	for rows.Next() {
		wire, err := scanWire(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, wire)
	}
	return out, rows.Err()
}

func (r *wireRepo) Create(ctx context.Context, wire Wire) (Wire, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO wires (brand, cross_section, insulation_type, voltage_rating, price_per_meter, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING %s`, wireColumns),
		wire.Brand, wire.CrossSection, wire.InsulationType, wire.VoltageRating, wire.PricePerMeter, wire.Description)
	out, err := scanWire(row)
	if err != nil {
		return Wire{}, mapConstraint(err)
	}
	return out, nil
}

func (r *wireRepo) Update(ctx context.Context, id string, wire Wire) (Wire, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE wires
		SET brand = $2, cross_section = $3, insulation_type = $4, voltage_rating = $5,
		    price_per_meter = $6, description = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, wireColumns),
		id, wire.Brand, wire.CrossSection, wire.InsulationType, wire.VoltageRating,
		wire.PricePerMeter, wire.Description, wire.IsActive)
	out, err := scanWire(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Wire{}, ErrNotFound
	}
	return out, mapConstraint(err)
}

func (r *wireRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM wires WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanWire(row pgx.Row) (Wire, error) {
	var wire Wire
	var crossSection, voltage, price pgtype.Numeric
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&wire.ID, &wire.Brand, &crossSection, &wire.InsulationType, &voltage,
		&price, &wire.Description, &wire.IsActive, &createdAt, &updatedAt); err != nil {
		return Wire{}, err
	}
	wire.CrossSection = numericFloat(crossSection)
	wire.VoltageRating = numericFloat(voltage)
	wire.PricePerMeter = numericFloat(price)
	wire.CreatedAt = createdAt.Time
	wire.UpdatedAt = updatedAt.Time
	return wire, nil
}

type motorRepo struct {
	db dbtx
}

const motorColumns = "id, name, power_kw, rpm, voltage, current, efficiency, price_per_unit, description, manufacturer, is_active, created_at, updated_at"

func (r *motorRepo) List(ctx context.Context) ([]Motor, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		"SELECT %s FROM motors WHERE is_active = true ORDER BY power_kw, rpm", motorColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Motor
	for rows.Next() {
		motor, err := scanMotor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, motor)
	}
	return out, rows.Err()
}

func (r *motorRepo) FindBySpecs(ctx context.Context, powerKW, rpm, voltage float64) (*Motor, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM motors
		WHERE power_kw = $1 AND rpm = $2 AND voltage = $3 AND is_active = true
		LIMIT 1`, motorColumns),
		powerKW, rpm, voltage)
	motor, err := scanMotor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &motor, nil
}

func (r *motorRepo) Create(ctx context.Context, motor Motor) (Motor, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO motors (name, power_kw, rpm, voltage, current, efficiency, price_per_unit, description, manufacturer, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
		RETURNING %s`, motorColumns),
		motor.Name, motor.PowerKW, motor.RPM, motor.Voltage, motor.Current,
		motor.Efficiency, motor.PricePerUnit, motor.Description, motor.Manufacturer)
	out, err := scanMotor(row)
	if err != nil {
		return Motor{}, mapConstraint(err)
	}
	return out, nil
}

func (r *motorRepo) Update(ctx context.Context, id string, motor Motor) (Motor, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE motors
		SET name = $2, power_kw = $3, rpm = $4, voltage = $5, current = $6, efficiency = $7,
		    price_per_unit = $8, description = $9, manufacturer = $10, is_active = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, motorColumns),
		id, motor.Name, motor.PowerKW, motor.RPM, motor.Voltage, motor.Current,
		motor.Efficiency, motor.PricePerUnit, motor.Description, motor.Manufacturer, motor.IsActive)
	out, err := scanMotor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Motor{}, ErrNotFound
	}
	return out, mapConstraint(err)
}

func (r *motorRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM motors WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMotor(row pgx.Row) (Motor, error) {
	var motor Motor
	var power, rpm, voltage, current, efficiency, price pgtype.Numeric
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&motor.ID, &motor.Name, &power, &rpm, &voltage, &current, &efficiency,
		&price, &motor.Description, &motor.Manufacturer, &motor.IsActive, &createdAt, &updatedAt); err != nil {
		return Motor{}, err
	}
	motor.PowerKW = numericFloat(power)
	motor.RPM = numericFloat(rpm)
	motor.Voltage = numericFloat(voltage)
	motor.Current = numericFloat(current)
	motor.Efficiency = numericFloat(efficiency)
	motor.PricePerUnit = numericFloat(price)
	motor.CreatedAt = createdAt.Time
	motor.UpdatedAt = updatedAt.Time
	return motor, nil
}

type bearingRepo struct {
	db dbtx
}

const bearingColumns = "id, designation, inner_diameter, outer_diameter, width, bearing_type, seal_type, manufacturer, price_per_unit, description, is_active, created_at, updated_at"

func (r *bearingRepo) List(ctx context.Context) ([]Bearing, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		"SELECT %s FROM bearings WHERE is_active = true ORDER BY designation", bearingColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bearing
	for rows.Next() {
		bearing, err := scanBearing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bearing)
	}
	return out, rows.Err()
}

func (r *bearingRepo) Create(ctx context.Context, bearing Bearing) (Bearing, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO bearings (designation, inner_diameter, outer_diameter, width, bearing_type, seal_type, manufacturer, price_per_unit, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
		RETURNING %s`, bearingColumns),
		bearing.Designation, bearing.InnerDiameter, bearing.OuterDiameter, bearing.Width,
		bearing.BearingType, bearing.SealType, bearing.Manufacturer, bearing.PricePerUnit, bearing.Description)
	out, err := scanBearing(row)
	if err != nil {
		return Bearing{}, mapConstraint(err)
	}
	return out, nil
}

func (r *bearingRepo) Update(ctx context.Context, id string, bearing Bearing) (Bearing, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE bearings
		SET designation = $2, inner_diameter = $3, outer_diameter = $4, width = $5, bearing_type = $6,
		    seal_type = $7, manufacturer = $8, price_per_unit = $9, description = $10, is_active = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, bearingColumns),
		id, bearing.Designation, bearing.InnerDiameter, bearing.OuterDiameter, bearing.Width,
		bearing.BearingType, bearing.SealType, bearing.Manufacturer, bearing.PricePerUnit,
		bearing.Description, bearing.IsActive)
	out, err := scanBearing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Bearing{}, ErrNotFound
	}
	return out, mapConstraint(err)
}

func (r *bearingRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM bearings WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBearing(row pgx.Row) (Bearing, error) {
	var bearing Bearing
	var inner, outer, width, price pgtype.Numeric
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&bearing.ID, &bearing.Designation, &inner, &outer, &width,
		&bearing.BearingType, &bearing.SealType, &bearing.Manufacturer, &price,
		&bearing.Description, &bearing.IsActive, &createdAt, &updatedAt); err != nil {
		return Bearing{}, err
	}
	bearing.InnerDiameter = numericFloat(inner)
	bearing.OuterDiameter = numericFloat(outer)
	bearing.Width = numericFloat(width)
	bearing.PricePerUnit = numericFloat(price)
	bearing.CreatedAt = createdAt.Time
	bearing.UpdatedAt = updatedAt.Time
	return bearing, nil
}

func numericFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return f.Float64
}
