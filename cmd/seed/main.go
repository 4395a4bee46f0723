package main

import (
	"context"
	"log"
	"time"

	"aparthotel/internal/config"
	"aparthotel/internal/database"
	"aparthotel/internal/domain"
	"aparthotel/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()

	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	apartmentRepo := repository.NewApartmentRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	log.Println("Creating roles...")
	roles := map[domain.RoleKey]*domain.Role{}
	for key, name := range map[domain.RoleKey]string{
		domain.RoleSupervisor:  "Supervisor",
		domain.RoleManager:     "Manager",
		domain.RoleCleaner:     "Cleaner",
		domain.RoleReception:   "Reception",
		domain.RoleMaintenance: "Maintenance",
	} {
		role := &domain.Role{Key: key, Name: name}
		if err := roleRepo.Create(ctx, role); err != nil {
			log.Fatal("role create failed:", err)
		}
		roles[key] = role
	}

	log.Println("Creating users...")
	quota := 480
	users := []struct {
		employeeID string
		name       string
		username   string
		password   string
		roles      []*domain.Role
		quota      *int
	}{
		{"E001", "Marta Ibarra", "marta", "super123", []*domain.Role{roles[domain.RoleSupervisor]}, nil},
		{"E002", "Jorge Peña", "jorge", "manager123", []*domain.Role{roles[domain.RoleManager]}, nil},
		{"E003", "Lucía Gómez", "lucia", "cleaner123", []*domain.Role{roles[domain.RoleCleaner]}, &quota},
		{"E004", "Rosa Martínez", "rosa", "cleaner123", []*domain.Role{roles[domain.RoleCleaner]}, &quota},
		{"E005", "Carlos Duarte", "carlos", "reception123", []*domain.Role{roles[domain.RoleReception], roles[domain.RoleMaintenance]}, nil},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		assigned := make([]domain.Role, 0, len(u.roles))
		for _, r := range u.roles {
			assigned = append(assigned, *r)
		}
		user := &domain.User{
			EmployeeID:   u.employeeID,
			Name:         u.name,
			Username:     u.username,
			PasswordHash: string(hash),
			Roles:        assigned,
			DailyMinutes: u.quota,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal("user create failed:", err)
		}
		log.Printf("User created: %s / %s", u.username, u.password)
	}

	log.Println("Creating apartments...")
	apartments := []*domain.Apartment{
		{Name: "0101", Size: domain.SizeSmall, SquareMeters: 42, Bedrooms: 1, Bathrooms: 1, CleaningTimeMinutes: 45},
		{Name: "0102", Size: domain.SizeMedium, SquareMeters: 68, Bedrooms: 2, Bathrooms: 1, CleaningTimeMinutes: 60},
		{Name: "0201", Size: domain.SizeLarge, SquareMeters: 95, Bedrooms: 3, Bathrooms: 2, CleaningTimeMinutes: 90},
		{Name: "0202", Size: domain.SizePH, SquareMeters: 140, Bedrooms: 3, Bathrooms: 3, CleaningTimeMinutes: 120},
	}
	for _, ap := range apartments {
		if err := apartmentRepo.Create(ctx, ap); err != nil {
			log.Fatal("apartment create failed:", err)
		}
	}

	log.Println("Creating task types...")
	for _, t := range []*domain.TaskType{
		{Code: "SL", Description: "Departure cleaning"},
		{Code: "SV", Description: "Stay-over service"},
		{Code: "LG", Description: "General deep clean"},
	} {
		if err := taskTypeRepo.Create(ctx, t); err != nil {
			log.Fatal("task type create failed:", err)
		}
	}

	log.Println("Creating sample reservation...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	res := &domain.Reservation{
		ApartmentID:    apartments[0].ID,
		GuestFirstName: "Ana",
		GuestLastName:  "Torres",
		GuestDocument:  "X1234567",
		CheckInDate:    today,
		CheckOutDate:   today.AddDate(0, 0, 4),
		Details:        "Late arrival",
	}
	if err := reservationRepo.Create(ctx, res); err != nil {
		log.Fatal("reservation create failed:", err)
	}

	if err := settingRepo.Set(ctx, &domain.Setting{
		Key:   domain.SettingBuildingName,
		Value: "Edificio Michelangelo",
	}); err != nil {
		log.Fatal("setting failed:", err)
	}

	log.Println("Seed complete.")
}
