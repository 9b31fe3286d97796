package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"carservice/internal/database"
	"carservice/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("carservice.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Vehicle{},
		&domain.ServiceCenter{},
		&domain.Appointment{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM service_centers")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "admin@carservice.local",
		PasswordHash: string(adminHash),
		Name:         "Admin",
	})

	// ================== CUSTOMERS & VEHICLES ==================
	log.Println("Creating customers...")
	names := []string{"Priya Sharma", "Arun Rao", "Meera Iyer", "Vikram Singh", "Sana Khan"}
	makes := [][2]string{{"Honda", "City"}, {"Maruti", "Swift"}, {"Hyundai", "i20"}, {"Tata", "Nexon"}, {"Toyota", "Innova"}}
	for i, name := range names {
		id := fmt.Sprintf("C%03d", i+1)
		db.Create(&domain.Customer{
			ID:          id,
			FullName:    name,
			PhoneNumber: fmt.Sprintf("98%08d", 10000000+i),
		})
		db.Create(&domain.Vehicle{
			RegistrationNo: fmt.Sprintf("MH14AB%04d", 1000+i),
			CustomerID:     id,
			Make:           makes[i][0],
			Model:          makes[i][1],
		})
	}

	// ================== SERVICE CENTERS & SLOTS ==================
	log.Println("Creating service centers...")
	centers := []domain.ServiceCenter{
		{ID: "SC01", Name: "Downtown Service Center"},
		{ID: "SC02", Name: "Airport Road Service Center"},
	}
	for _, sc := range centers {
		db.Create(&sc)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for d := 0; d < 30; d++ {
		for _, sc := range centers {
			db.Create(&domain.Appointment{
				ServiceCenter:  sc.ID,
				Date:           today.AddDate(0, 0, d),
				AvailableSlots: 4,
			})
		}
	}

	// ================== BOOKINGS ==================
	// A year of history so the yearly breakdown chart has something in
	// every month, plus a handful for today so the table is not empty.
	log.Println("Creating bookings...")
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		date := yearStart.AddDate(0, 0, rand.Intn(365))
		status := domain.BookingConfirmed
		if rand.Intn(10) == 0 {
			status = domain.BookingCancelled
		}
		ci := rand.Intn(len(names))
		db.Create(&domain.Booking{
			CustomerID:      fmt.Sprintf("C%03d", ci+1),
			RegistrationNo:  fmt.Sprintf("MH14AB%04d", 1000+ci),
			ServiceCenterID: centers[rand.Intn(len(centers))].ID,
			AppointmentDate: date,
			Status:          status,
		})
	}
	for i := 0; i < 3; i++ {
		db.Create(&domain.Booking{
			CustomerID:      fmt.Sprintf("C%03d", i+1),
			RegistrationNo:  fmt.Sprintf("MH14AB%04d", 1000+i),
			ServiceCenterID: centers[i%len(centers)].ID,
			AppointmentDate: today,
			Status:          domain.BookingConfirmed,
		})
	}

	log.Println("Seed complete. Admin login: admin@carservice.local / admin123")
}
