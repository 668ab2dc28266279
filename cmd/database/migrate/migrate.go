package migration

import (
	"fmt"
	"log"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seedTableCount = 12

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Customer{}); err != nil {
		log.Fatalf("Error migrating customer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Staff{}); err != nil {
		log.Fatalf("Error migrating staff database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Table{}); err != nil {
		log.Fatalf("Error migrating table database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItemLog{}); err != nil {
		log.Fatalf("Error migrating menu item log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order item database: %v", err)
		return err
	}

	if err := seedTables(db); err != nil {
		log.Fatalf("Error seeding tables: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedTables fills the dining floor on first boot so QR codes can be
// printed before any staff action. Re-running the migration leaves an
// already seeded floor untouched.
func seedTables(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for n := 1; n <= seedTableCount; n++ {
		t := entities.Table{
			ID:          uuid.New(),
			TableNumber: n,
			Status:      domain.TableVacant,
		}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
