// Package catalog exposes the four reference catalogs used to synthesize
// repair items: employees, wires, motors and bearings.
package catalog

import "time"

// Employee is a labor catalog row priced per hour.
type Employee struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	HourlyRate  float64   `json:"hourly_rate" db:"hourly_rate"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Wire is a cable catalog row priced per meter.
type Wire struct {
	ID             string    `json:"id" db:"id"`
	Brand          string    `json:"brand" db:"brand"`
	CrossSection   float64   `json:"cross_section" db:"cross_section"`
	InsulationType string    `json:"insulation_type" db:"insulation_type"`
	VoltageRating  float64   `json:"voltage_rating" db:"voltage_rating"`
	PricePerMeter  float64   `json:"price_per_meter" db:"price_per_meter"`
	Description    string    `json:"description" db:"description"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Motor is an electric motor catalog row priced per unit.
type Motor struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PowerKW      float64   `json:"power_kw" db:"power_kw"`
	RPM          float64   `json:"rpm" db:"rpm"`
	Voltage      float64   `json:"voltage" db:"voltage"`
	Current      float64   `json:"current" db:"current"`
	Efficiency   float64   `json:"efficiency" db:"efficiency"`
	PricePerUnit float64   `json:"price_per_unit" db:"price_per_unit"`
	Description  string    `json:"description" db:"description"`
	Manufacturer string    `json:"manufacturer" db:"manufacturer"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Bearing is a bearing catalog row priced per unit.
type Bearing struct {
	ID            string    `json:"id" db:"id"`
	Designation   string    `json:"designation" db:"designation"`
	InnerDiameter float64   `json:"inner_diameter" db:"inner_diameter"`
	OuterDiameter float64   `json:"outer_diameter" db:"outer_diameter"`
	Width         float64   `json:"width" db:"width"`
	BearingType   string    `json:"bearing_type" db:"bearing_type"`
	SealType      string    `json:"seal_type" db:"seal_type"`
	Manufacturer  string    `json:"manufacturer" db:"manufacturer"`
	PricePerUnit  float64   `json:"price_per_unit" db:"price_per_unit"`
	Description   string    `json:"description" db:"description"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
