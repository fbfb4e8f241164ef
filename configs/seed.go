package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

// SeedAdmin creates the first admin from env credentials.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		Email:    email,
		Password: string(hash),
		Name:     "Administrator",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedStarterData gives a fresh install something to render: a few
// tables and a small menu. No-op once tables exist.
func SeedStarterData() error {
	db := DB()

	var count int64
	db.Model(&entity.Table{}).Count(&count)
	if count > 0 {
		return nil
	}

	for i := 1; i <= 8; i++ {
		capacity := 4
		if i > 6 {
			capacity = 6
		}
		t := entity.Table{Number: i, Name: "Table", Capacity: capacity, Status: session.StatusAvailable.String(), Guests: 1}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}

	items := []entity.MenuItem{
		{Name: "Paneer Tikka", Category: "Starters", Price: "240", IsAvailable: true, IsVegetarian: true},
		{Name: "Chicken Lollipop", Category: "Starters", Price: "280", IsAvailable: true},
		{Name: "Veg Thali", Category: "Main Course", Price: "220", IsAvailable: true, IsVegetarian: true},
		{Name: "Butter Chicken", Category: "Main Course", Price: "320", IsAvailable: true},
		{Name: "Jeera Rice", Category: "Rice", Price: "140", IsAvailable: true, IsVegetarian: true},
		{Name: "Masala Chaas", Category: "Beverages", Price: "60", IsAvailable: true, IsVegetarian: true},
		{Name: "Gulab Jamun", Category: "Desserts", Price: "90", IsAvailable: true, IsVegetarian: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
