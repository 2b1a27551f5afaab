package catalog

// Create payloads. Rates must be positive; the UI disables submission on
// violations and the server enforces the same rule.

type CreateEmployeeRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	HourlyRate  float64 `json:"hourly_rate" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=500"`
}

type CreateWireRequest struct {
	Brand          string  `json:"brand" validate:"required,max=200"`
	CrossSection   float64 `json:"cross_section" validate:"gte=0"`
	InsulationType string  `json:"insulation_type" validate:"max=100"`
	VoltageRating  float64 `json:"voltage_rating" validate:"gte=0"`
	PricePerMeter  float64 `json:"price_per_meter" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"max=500"`
}

type CreateMotorRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	PowerKW      float64 `json:"power_kw" validate:"gte=0"`
	RPM          float64 `json:"rpm" validate:"gte=0"`
	Voltage      float64 `json:"voltage" validate:"gte=0"`
	Current      float64 `json:"current" validate:"gte=0"`
	Efficiency   float64 `json:"efficiency" validate:"gte=0,lte=100"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"max=500"`
	Manufacturer string  `json:"manufacturer" validate:"max=200"`
}

type CreateBearingRequest struct {
	Designation   string  `json:"designation" validate:"required,max=200"`
	InnerDiameter float64 `json:"inner_diameter" validate:"gte=0"`
	OuterDiameter float64 `json:"outer_diameter" validate:"gte=0"`
	Width         float64 `json:"width" validate:"gte=0"`
	BearingType   string  `json:"bearing_type" validate:"max=100"`
	SealType      string  `json:"seal_type" validate:"max=100"`
	Manufacturer  string  `json:"manufacturer" validate:"max=200"`
	PricePerUnit  float64 `json:"price_per_unit" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"max=500"`
}

// Update payloads mirror the create shapes plus the visibility flag.

type UpdateEmployeeRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	HourlyRate  float64 `json:"hourly_rate" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=500"`
	IsActive    bool    `json:"is_active"`
}

type UpdateWireRequest struct {
	Brand          string  `json:"brand" validate:"required,max=200"`
	CrossSection   float64 `json:"cross_section" validate:"gte=0"`
	InsulationType string  `json:"insulation_type" validate:"max=100"`
	VoltageRating  float64 `json:"voltage_rating" validate:"gte=0"`
	PricePerMeter  float64 `json:"price_per_meter" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"max=500"`
	IsActive       bool    `json:"is_active"`
}

type UpdateMotorRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	PowerKW      float64 `json:"power_kw" validate:"gte=0"`
	RPM          float64 `json:"rpm" validate:"gte=0"`
	Voltage      float64 `json:"voltage" validate:"gte=0"`
	Current      float64 `json:"current" validate:"gte=0"`
	Efficiency   float64 `json:"efficiency" validate:"gte=0,lte=100"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"max=500"`
	Manufacturer string  `json:"manufacturer" validate:"max=200"`
	IsActive     bool    `json:"is_active"`
}

type UpdateBearingRequest struct {
	Designation   string  `json:"designation" validate:"required,max=200"`
	InnerDiameter float64 `json:"inner_diameter" validate:"gte=0"`
	OuterDiameter float64 `json:"outer_diameter" validate:"gte=0"`
	Width         float64 `json:"width" validate:"gte=0"`
	BearingType   string  `json:"bearing_type" validate:"max=100"`
	SealType      string  `json:"seal_type" validate:"max=100"`
	Manufacturer  string  `json:"manufacturer" validate:"max=200"`
	PricePerUnit  float64 `json:"price_per_unit" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"max=500"`
	IsActive      bool    `json:"is_active"`
}
