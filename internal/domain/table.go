package domain

import "time"

type TableLocation string

const (
	LocationTerraceSeaView  TableLocation = "TERRACE_SEA_VIEW"
	LocationTerraceStandard TableLocation = "TERRACE_STANDARD"
	LocationIndoorWindow    TableLocation = "INDOOR_WINDOW"
	LocationIndoorStandard  TableLocation = "INDOOR_STANDARD"
	LocationBarArea         TableLocation = "BAR_AREA"
)

// AllLocations in display order (best view first).
var AllLocations = []TableLocation{
	LocationTerraceSeaView,
	LocationTerraceStandard,
	LocationIndoorWindow,
	LocationIndoorStandard,
	LocationBarArea,
}

func (l TableLocation) Valid() bool {
	switch l {
	case LocationTerraceSeaView, LocationTerraceStandard,
		LocationIndoorWindow, LocationIndoorStandard, LocationBarArea:
		return true
	}
	return false
}

// PriceMultiplier is a display/ranking factor per location. Unknown
// locations fall back to 1.0.
func (l TableLocation) PriceMultiplier() float64 {
	switch l {
	case LocationTerraceSeaView:
		return 1.2
	case LocationTerraceStandard:
		return 1.1
	case LocationIndoorWindow:
		return 1.0
	case LocationIndoorStandard:
		return 0.9
	case LocationBarArea:
		return 0.8
	default:
		return 1.0
	}
}

// TableStatus is derived at read time from the isActive flag and the
// table's active reservations. It is never persisted.
type TableStatus string

const (
	TableAvailable   TableStatus = "AVAILABLE"
	TableOccupied    TableStatus = "OCCUPIED"
	TableReserved    TableStatus = "RESERVED"
	TableMaintenance TableStatus = "MAINTENANCE" // manual override only, never auto-derived
	TableOutOfOrder  TableStatus = "OUT_OF_ORDER"
)

type Table struct {
	ID        int64         `json:"id"`
	Number    int           `json:"number" validate:"required,gt=0"`
	Capacity  int           `json:"capacity" validate:"required,gte=1"`
	Location  TableLocation `json:"location" validate:"required"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
