package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hotelhub/internal/config"
	"hotelhub/internal/database"
	"hotelhub/internal/domain"
	"hotelhub/internal/logger"
	"hotelhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	logger.Init(cfg.LogLevel, "text")

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate database", "error", err)
	}

	// cleanup in FK-safe order
	logger.Get().Info("cleaning old data")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)

	logger.Get().Info("creating users")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{Email: "admin@hotelhub.dev", PasswordHash: string(adminHash), Name: "Admin", Role: domain.RoleAdmin}
	mustCreateUser(ctx, users, &admin)

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{Email: "manager@hotelhub.dev", PasswordHash: string(managerHash), Name: "Hotel Manager", Role: domain.RoleManager}
	mustCreateUser(ctx, users, &manager)

	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	guest := domain.User{Email: "guest@hotelhub.dev", PasswordHash: string(guestHash), Name: "Guest", Role: domain.RoleClient}
	mustCreateUser(ctx, users, &guest)

	logger.Get().Info("creating hotels and rooms")

	grand := domain.Hotel{
		OwnerID: manager.ID,
		Name:    "Grand Plaza",
		Address: "12 Abay Avenue",
		City:    "Almaty",
		Stars:   5,
	}
	if err := hotels.Create(ctx, &grand); err != nil {
		logger.Fatal("create hotel", "error", err)
	}

	standard := domain.Room{HotelID: grand.ID, Name: "Standard Double", Price: 24000, Quantity: 10, Capacity: 2}
	deluxe := domain.Room{HotelID: grand.ID, Name: "Deluxe Suite", Price: 58000, Quantity: 3, Capacity: 4}
	for _, room := range []*domain.Room{&standard, &deluxe} {
		if err := rooms.Create(ctx, room); err != nil {
			logger.Fatal("create room", "error", err)
		}
	}

	logger.Get().Info("creating demo booking")

	from := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7)
	to := from.AddDate(0, 0, 3)
	if _, err := bookings.Add(ctx, guest.ID, standard.ID, from, to); err != nil {
		logger.Fatal("create booking", "error", err)
	}

	logger.Get().Info("seed complete")
}

func mustCreateUser(ctx context.Context, users *repository.UserRepository, u *domain.User) {
	if err := users.Create(ctx, u); err != nil {
		logger.Fatal("create user", "error", err, "email", u.Email)
	}
}
