package services

import (
	"context"
	"fmt"

	"github.com/Santander-alt/catalogo/app/models"
	"github.com/Santander-alt/catalogo/app/repositories"
	"github.com/shopspring/decimal"
)

// CatalogService arma la proyección producto+categoría y canaliza las
// escrituras de productos para poder aplicar, si se configura, la
// verificación estricta de referencias de categoría.
type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	strictRefs   bool
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, strictRefs bool) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		strictRefs:   strictRefs,
	}
}

// ListProducts hace el left join en memoria: una lectura de productos,
// una lectura de categorías, y el cruce por CategoryID. Las dos
// lecturas no comparten transacción; una escritura concurrente entre
// ambas puede dejar el embed desfasado, relajación aceptada.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID uint) ([]models.ProductView, error) {
	products, err := s.productRepo.GetAll(ctx, repositories.ProductFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	views := make([]models.ProductView, len(products))
	for i, p := range products {
		view := models.ProductView{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.InexactFloat64(),
		}
		if p.CategoryID != nil {
			if c, ok := byID[*p.CategoryID]; ok {
				view.Category = &models.CategoryRef{ID: c.ID, Name: c.Name}
			}
		}
		views[i] = view
	}
	return views, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID *uint) (*models.Product, error) {
	if err := s.checkCategoryRef(ctx, categoryID); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, name string, price decimal.Decimal, categoryID *uint) error {
	if err := s.checkCategoryRef(ctx, categoryID); err != nil {
		return err
	}
	_, err := s.productRepo.Update(ctx, id, name, price, categoryID)
	return err
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	_, err := s.productRepo.Delete(ctx, id)
	return err
}

// checkCategoryRef solo actúa en modo estricto; por defecto la
// referencia colgante se guarda tal cual (comportamiento original).
func (s *CatalogService) checkCategoryRef(ctx context.Context, categoryID *uint) error {
	if !s.strictRefs || categoryID == nil {
		return nil
	}
	ok, err := s.categoryRepo.Exists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: la categoría %d no existe", models.ErrValidation, *categoryID)
	}
	return nil
}
