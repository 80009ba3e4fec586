package dashboard

import "ristorante/internal/domain"

// Stats is the staff dashboard snapshot for one day.
type Stats struct {
	Date            string                           `json:"date"`
	TotalToday      int                              `json:"total_today"`
	ByStatus        map[domain.ReservationStatus]int `json:"by_status"`
	ExpectedCovers  int                              `json:"expected_covers"`
	TableBreakdown  map[domain.TableStatus]int       `json:"table_breakdown"`
	ActiveTables    int                              `json:"active_tables"`
	CurrentOccupied int                              `json:"current_occupied"`
}
