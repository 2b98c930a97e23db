package model

// BodyStyle body categories exposed in the catalog.
type BodyStyle string

const (
	BodySedan BodyStyle = "sedan"
	BodySUV   BodyStyle = "suv"
	BodyTruck BodyStyle = "truck"
	BodyVan   BodyStyle = "van"
)

// Powertrain drivetrain categories.
type Powertrain string

const (
	PowertrainGas      Powertrain = "gas"
	PowertrainHybrid   Powertrain = "hybrid"
	PowertrainElectric Powertrain = "electric"
)

// ModelTier groups models by how well they hold value.
type ModelTier string

const (
	TierEconomy  ModelTier = "economy"
	TierStandard ModelTier = "standard"
	TierFlagship ModelTier = "flagship"
)

// VehicleTrim is an immutable catalog entry. Created at catalog load, never mutated.
type VehicleTrim struct {
	Model      string     `json:"model"`
	TrimName   string     `json:"trim_name"`
	Year       int        `json:"year"`
	BasePrice  float64    `json:"base_price"`
	CityMPG    float64    `json:"mpg_city"`
	HighwayMPG float64    `json:"mpg_highway"`
	BodyStyle  BodyStyle  `json:"body_style"`
	Powertrain Powertrain `json:"powertrain"`
	Tier       ModelTier  `json:"tier"`
	Seating    int        `json:"seating"`
	ImageURL   string     `json:"image_url,omitempty"`
}

// AverageMPG is the simple mean of city and highway ratings.
func (v VehicleTrim) AverageMPG() float64 {
	return (v.CityMPG + v.HighwayMPG) / 2
}

// VehicleListResponse is returned by GET /api/vehicles.
type VehicleListResponse struct {
	Data      []VehicleTrim `json:"data"`
	FromCache bool          `json:"fromCache"`
}
