package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"ristorante/internal/database"
	"ristorante/internal/domain"
	"ristorante/internal/pkg/logger"
	"ristorante/internal/repository"
)

// Seeds a development database: staff accounts, the floor plan, the menu,
// gallery images, settings and a handful of reservations for tonight.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "ristorante.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		logger.Error.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Error.Fatal(err)
	}

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	tableRepo := repository.NewTableRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	seedUsers(ctx, userRepo)
	tables := seedTables(ctx, tableRepo)
	seedMenu(ctx, menuRepo)
	seedGallery(ctx, galleryRepo)
	seedSettings(ctx, settingRepo)
	seedReservations(ctx, customerRepo, reservationRepo, tables)

	logger.Info.Println("Seed complete")
}

func seedUsers(ctx context.Context, repo *repository.UserRepository) {
	users := []struct {
		email    string
		password string
		name     string
		role     domain.UserRole
	}{
		{"admin@ristorante.local", "admin123", "Admin", domain.RoleAdmin},
		{"staff@ristorante.local", "staff123", "Front of House", domain.RoleStaff},
	}

	for _, u := range users {
		if _, err := repo.GetByEmail(ctx, u.email); err == nil {
			continue // already seeded
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error.Fatal(err)
		}
		user := &domain.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
		}
		if err := repo.Create(ctx, user); err != nil {
			logger.Error.Fatal(err)
		}
		logger.Info.Printf("Created user %s (%s)", u.email, u.role)
	}
}

func seedTables(ctx context.Context, repo *repository.TableRepository) []domain.Table {
	existing, err := repo.List(ctx, repository.TableFilters{})
	if err != nil {
		logger.Error.Fatal(err)
	}
	if len(existing) > 0 {
		return existing
	}

	plan := []domain.Table{
		{Number: 1, Capacity: 2, Location: domain.LocationTerraceSeaView},
		{Number: 2, Capacity: 2, Location: domain.LocationTerraceSeaView},
		{Number: 3, Capacity: 4, Location: domain.LocationTerraceSeaView},
		{Number: 4, Capacity: 4, Location: domain.LocationTerraceStandard},
		{Number: 5, Capacity: 6, Location: domain.LocationTerraceStandard},
		{Number: 6, Capacity: 2, Location: domain.LocationIndoorWindow},
		{Number: 7, Capacity: 4, Location: domain.LocationIndoorWindow},
		{Number: 8, Capacity: 4, Location: domain.LocationIndoorStandard},
		{Number: 9, Capacity: 6, Location: domain.LocationIndoorStandard},
		{Number: 10, Capacity: 8, Location: domain.LocationIndoorStandard},
		{Number: 11, Capacity: 2, Location: domain.LocationBarArea},
		{Number: 12, Capacity: 2, Location: domain.LocationBarArea},
	}

	out := make([]domain.Table, 0, len(plan))
	for _, t := range plan {
		t.IsActive = true
		if err := repo.Create(ctx, &t); err != nil {
			logger.Error.Fatal(err)
		}
		out = append(out, t)
	}
	logger.Info.Printf("Created %d tables", len(out))
	return out
}

func seedMenu(ctx context.Context, repo *repository.MenuRepository) {
	existing, err := repo.ListCategoriesWithItems(ctx, false)
	if err != nil {
		logger.Error.Fatal(err)
	}
	if len(existing) > 0 {
		return
	}

	menu := []struct {
		category string
		items    []domain.MenuItem
	}{
		{"Antipasti", []domain.MenuItem{
			{Name: "Bruschetta al pomodoro", Price: 8.50, Description: "Grilled bread, tomatoes, basil"},
			{Name: "Carpaccio di manzo", Price: 14.00, Description: "Thinly sliced beef, rocket, parmesan"},
		}},
		{"Primi", []domain.MenuItem{
			{Name: "Spaghetti alle vongole", Price: 18.00, Description: "Clams, garlic, white wine"},
			{Name: "Risotto ai frutti di mare", Price: 21.00, Description: "Seafood risotto"},
		}},
		{"Secondi", []domain.MenuItem{
			{Name: "Branzino alla griglia", Price: 26.00, Description: "Grilled sea bass, seasonal vegetables"},
			{Name: "Tagliata di manzo", Price: 28.00, Description: "Sliced beef, rosemary potatoes"},
		}},
		{"Dolci", []domain.MenuItem{
			{Name: "Tiramisu", Price: 7.50},
			{Name: "Panna cotta", Price: 7.00, Description: "With berry coulis"},
		}},
	}

	for i, group := range menu {
		cat := &domain.MenuCategory{Name: group.category, SortOrder: i + 1}
		if err := repo.CreateCategory(ctx, cat); err != nil {
			logger.Error.Fatal(err)
		}
		for j, item := range group.items {
			item.CategoryID = cat.ID
			item.IsAvailable = true
			item.SortOrder = j + 1
			if err := repo.CreateItem(ctx, &item); err != nil {
				logger.Error.Fatal(err)
			}
		}
	}
	logger.Info.Println("Created menu")
}

func seedGallery(ctx context.Context, repo *repository.GalleryRepository) {
	existing, err := repo.List(ctx, "")
	if err != nil {
		logger.Error.Fatal(err)
	}
	if len(existing) > 0 {
		return
	}

	images := []domain.GalleryImage{
		{Title: "Terrace at sunset", URL: "https://cdn.ristorante.local/gallery/terrace.jpg", Category: "interior", SortOrder: 1},
		{Title: "Dining room", URL: "https://cdn.ristorante.local/gallery/dining.jpg", Category: "interior", SortOrder: 2},
		{Title: "Branzino alla griglia", URL: "https://cdn.ristorante.local/gallery/branzino.jpg", Category: "food", SortOrder: 3},
	}
	for i := range images {
		if err := repo.Create(ctx, &images[i]); err != nil {
			logger.Error.Fatal(err)
		}
	}
	logger.Info.Printf("Created %d gallery images", len(images))
}

func seedSettings(ctx context.Context, repo *repository.SettingRepository) {
	defaults := map[string]string{
		"restaurant_name":  "Ristorante Mare",
		"opening_time":     "12:00",
		"closing_time":     "22:00",
		"contact_phone":    "+39 010 0000000",
		"contact_email":    "info@ristorante.local",
		"default_duration": "120",
	}
	for k, v := range defaults {
		if _, err := repo.Get(ctx, k); err == nil {
			continue
		}
		if err := repo.Upsert(ctx, k, v); err != nil {
			logger.Error.Fatal(err)
		}
	}
	logger.Info.Println("Created settings")
}

func seedReservations(
	ctx context.Context,
	customers *repository.CustomerRepository,
	reservations *repository.ReservationRepository,
	tables []domain.Table,
) {
	if len(tables) < 2 {
		return
	}

	tonight := time.Now().Add(24 * time.Hour)
	tonight = time.Date(tonight.Year(), tonight.Month(), tonight.Day(), 19, 0, 0, 0, tonight.Location())

	bookings := []struct {
		name, email, phone string
		table              int
		start              time.Time
		party              int
		status             domain.ReservationStatus
	}{
		{"Anna Rossi", "anna.rossi@example.com", "+39 333 1111111", 0, tonight, 2, domain.ReservationConfirmed},
		{"Marco Bianchi", "marco.bianchi@example.com", "+39 333 2222222", 1, tonight.Add(time.Hour), 4, domain.ReservationPending},
	}

	for i, b := range bookings {
		c, err := customers.FindOrCreateByEmail(ctx, b.name, b.email, b.phone)
		if err != nil {
			logger.Error.Fatal(err)
		}

		tableID := tables[b.table].ID
		r := &domain.Reservation{
			ReferenceCode:   referenceCode(i),
			CustomerID:      c.ID,
			TableID:         &tableID,
			DateTime:        b.start,
			DurationMinutes: domain.DefaultDurationMinutes,
			PartySize:       b.party,
			Status:          b.status,
		}
		if err := reservations.CreateWithConflictCheck(ctx, r); err != nil {
			logger.Info.Printf("Skipping reservation for %s: %v", b.name, err)
			continue
		}
	}
	logger.Info.Println("Created sample reservations")
}

func referenceCode(i int) string {
	return []string{"RES-SEED0001", "RES-SEED0002", "RES-SEED0003"}[i%3]
}
