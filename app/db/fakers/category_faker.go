package fakers

import (
	"github.com/Santander-alt/catalogo/app/models"
	"github.com/go-faker/faker/v4"
)

func CategoryFaker() *models.Category {
	return &models.Category{
		Name: faker.Word(),
	}
}
