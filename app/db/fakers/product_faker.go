package fakers

import (
	"math"
	"math/rand"

	"github.com/Santander-alt/catalogo/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
)

// ProductFaker arma un producto de prueba; con category en nil queda
// sin categorizar.
func ProductFaker(category *models.Category) *models.Product {
	var categoryID *uint
	if category != nil {
		categoryID = &category.ID
	}

	return &models.Product{
		Name:       faker.Name(),
		Price:      decimal.NewFromFloat(fakePrice()),
		CategoryID: categoryID,
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), rand.Intn(2)+1)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a

}
