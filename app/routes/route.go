package routes

import (
	"net/http"

	"github.com/Santander-alt/catalogo/app/configs"
	"github.com/Santander-alt/catalogo/app/handlers"
	"github.com/Santander-alt/catalogo/app/middlewares"
	"github.com/Santander-alt/catalogo/app/repositories"
	"github.com/Santander-alt/catalogo/app/services"
	"github.com/Santander-alt/catalogo/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) http.Handler {
	router := mux.NewRouter()
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLoggerMiddleware)

	render := renderer.New()
	validate := validator.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, env.StrictCategoryRefs)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo, render, validate)
	productHandler := handlers.NewProductHandler(catalogSvc, render, validate)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	api.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	api.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/products/export", productHandler.Export).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	return middlewares.NewCORS(env.CorsOrigin).Handler(router)
}
