package repositories

import (
	"context"
	"fmt"

	"github.com/Santander-alt/catalogo/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id uint, name string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listar categorías: %v", models.ErrPersistence, err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: buscar categoría %d: %v", models.ErrPersistence, id, err)
	}
	return &category, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: verificar categoría %d: %v", models.ErrPersistence, id, err)
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: el nombre de la categoría es obligatorio", models.ErrValidation)
	}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("%w: crear categoría: %v", models.ErrPersistence, err)
	}
	return nil
}

// Update reemplaza el nombre. Cero filas afectadas no es error: el
// comportamiento observado responde éxito aunque el id no exista.
func (r *categoryRepository) Update(ctx context.Context, id uint, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: el nombre de la categoría es obligatorio", models.ErrValidation)
	}
	res := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: actualizar categoría %d: %v", models.ErrPersistence, id, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: eliminar categoría %d: %v", models.ErrPersistence, id, res.Error)
	}
	return res.RowsAffected, nil
}
