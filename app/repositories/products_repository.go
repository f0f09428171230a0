package repositories

import (
	"context"
	"fmt"

	"github.com/Santander-alt/catalogo/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter restringe los listados. CategoryID en cero significa
// sin filtro (escaneo completo).
type ProductFilter struct {
	CategoryID uint
}

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, name string, price decimal.Decimal, categoryID *uint) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

func (p *productRepository) GetAll(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	query := p.db.WithContext(ctx).Model(&models.Product{}).Order("id")
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: listar productos: %v", models.ErrPersistence, err)
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: buscar producto %d: %v", models.ErrPersistence, id, err)
	}
	return &product, nil
}

// Create guarda CategoryID tal cual llega, sin verificar que la
// categoría exista; la referencia colgante se tolera y el read model
// la resuelve a "sin categoría".
func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: el nombre del producto es obligatorio", models.ErrValidation)
	}
	if err := p.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("%w: crear producto: %v", models.ErrPersistence, err)
	}
	return nil
}

// Update reemplaza nombre, precio y categoría de una vez. Cero filas
// afectadas no es error (mismo no-op silencioso que Category.Update).
func (p *productRepository) Update(ctx context.Context, id uint, name string, price decimal.Decimal, categoryID *uint) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: el nombre del producto es obligatorio", models.ErrValidation)
	}
	res := p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"price":       price,
		"category_id": categoryID,
	})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: actualizar producto %d: %v", models.ErrPersistence, id, res.Error)
	}
	return res.RowsAffected, nil
}

func (p *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: eliminar producto %d: %v", models.ErrPersistence, id, res.Error)
	}
	return res.RowsAffected, nil
}
