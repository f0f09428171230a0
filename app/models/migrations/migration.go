package migrations

import (
	"github.com/Santander-alt/catalogo/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{})
}
