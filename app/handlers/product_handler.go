package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Santander-alt/catalogo/app/helpers"
	"github.com/Santander-alt/catalogo/app/services"
	"github.com/Santander-alt/catalogo/app/utils/csvexport"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductForm struct {
	Name       string   `json:"name" validate:"required"`
	Price      *float64 `json:"price" validate:"required"`
	CategoryID *uint    `json:"categoryId"`
}

// categoryRef normaliza la referencia del formulario: el select del
// frontend manda 0 cuando no hay categoría elegida.
func (f *ProductForm) categoryRef() *uint {
	if f.CategoryID == nil || *f.CategoryID == 0 {
		return nil
	}
	return f.CategoryID
}

type ProductHandler struct {
	catalogSvc *services.CatalogService
	render     *render.Render
	validator  *validator.Validate
}

func NewProductHandler(catalogSvc *services.CatalogService, renderer *render.Render, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		catalogSvc: catalogSvc,
		render:     renderer,
		validator:  validate,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID := parseID(r.URL.Query().Get("categoryId"))

	views, err := h.catalogSvc.ListProducts(r.Context(), categoryID)
	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al obtener los productos"})
		return
	}
	h.render.JSON(w, http.StatusOK, views)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("ProductHandler.Create: cuerpo inválido: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al crear el producto"})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("ProductHandler.Create: validación: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "Error al crear el producto: " + helpers.ValidationMessage(validationErrors),
		})
		return
	}

	product, err := h.catalogSvc.CreateProduct(r.Context(), form.Name, decimal.NewFromFloat(*form.Price), form.categoryRef())
	if err != nil {
		log.Printf("ProductHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al crear el producto"})
		return
	}

	h.render.JSON(w, http.StatusCreated, ResultResponse{
		Message: "Producto creado",
		Result:  product,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseID(mux.Vars(r)["id"])

	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("ProductHandler.Update: cuerpo inválido: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al actualizar el producto"})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("ProductHandler.Update: validación: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "Error al actualizar el producto: " + helpers.ValidationMessage(validationErrors),
		})
		return
	}

	if err := h.catalogSvc.UpdateProduct(r.Context(), id, form.Name, decimal.NewFromFloat(*form.Price), form.categoryRef()); err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al actualizar el producto"})
		return
	}

	h.render.JSON(w, http.StatusOK, MessageResponse{Message: "Producto actualizado"})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseID(mux.Vars(r)["id"])

	if err := h.catalogSvc.DeleteProduct(r.Context(), id); err != nil {
		log.Printf("ProductHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al eliminar el producto"})
		return
	}

	h.render.JSON(w, http.StatusOK, MessageResponse{Message: "Producto eliminado"})
}

// Export sirve la proyección actual como CSV, la misma transformación
// que el frontend hacía en local.
func (h *ProductHandler) Export(w http.ResponseWriter, r *http.Request) {
	categoryID := parseID(r.URL.Query().Get("categoryId"))

	views, err := h.catalogSvc.ListProducts(r.Context(), categoryID)
	if err != nil {
		log.Printf("ProductHandler.Export: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al obtener los productos"})
		return
	}

	doc, err := csvexport.Export(views)
	if err != nil {
		if errors.Is(err, csvexport.ErrNoProducts) {
			h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "No hay productos para exportar"})
			return
		}
		log.Printf("ProductHandler.Export: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al exportar los productos"})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="productos.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
