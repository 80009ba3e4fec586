package availability

import (
	"time"

	"ristorante/internal/domain"
)

type CheckRequest struct {
	DateTime          time.Time             `json:"date_time" binding:"required" validate:"required"`
	PartySize         int                   `json:"party_size" binding:"required" validate:"gte=1"`
	DurationMinutes   int                   `json:"duration_minutes" validate:"omitempty,gte=60,lte=300"` // 0 means the 120-minute default
	PreferredLocation *domain.TableLocation `json:"preferred_location,omitempty"`
}

// LocationGroup keeps the grouping ordered (location asc, then capacity,
// then table number); a JSON object would lose that.
type LocationGroup struct {
	Location        domain.TableLocation `json:"location"`
	PriceMultiplier float64              `json:"price_multiplier"`
	Tables          []domain.Table       `json:"tables"`
}

type Recommendation struct {
	Table           domain.Table `json:"table"`
	PriceMultiplier float64      `json:"price_multiplier"`
}

type Result struct {
	Available        bool             `json:"available"`
	TotalTables      int              `json:"total_tables"`
	TablesByLocation []LocationGroup  `json:"tables_by_location"`
	Recommendations  []Recommendation `json:"recommendations"`
	// Declared for API stability; alternative-time search is not implemented.
	AlternativeTimes []string `json:"alternative_times"`
}

type HourSlot struct {
	Time            string `json:"time"` // "12:00" .. "22:00"
	AvailableTables int    `json:"available_tables"`
	TotalCapacity   int    `json:"total_capacity"`
	OccupancyRate   int    `json:"occupancy_rate"`
}

type DailyReport struct {
	Date             string     `json:"date"`
	Slots            []HourSlot `json:"slots"`
	PeakHours        []string   `json:"peak_hours"`
	RecommendedTimes []string   `json:"recommended_times"`
}
