package seeders

import (
	"github.com/Santander-alt/catalogo/app/db/fakers"
	"gorm.io/gorm"
)

const (
	categoryCount        = 3
	productsPerCategory  = 4
	uncategorizedPerSeed = 1
)

func DBSeed(db *gorm.DB) error {
	for i := 0; i < categoryCount; i++ {
		category := fakers.CategoryFaker()
		if err := db.Debug().Create(category).Error; err != nil {
			return err
		}

		for j := 0; j < productsPerCategory; j++ {
			if err := db.Debug().Create(fakers.ProductFaker(category)).Error; err != nil {
				return err
			}
		}
	}

	// Productos sueltos para ver el caso "sin categoría" en la vista.
	for i := 0; i < uncategorizedPerSeed; i++ {
		if err := db.Debug().Create(fakers.ProductFaker(nil)).Error; err != nil {
			return err
		}
	}

	return nil
}
