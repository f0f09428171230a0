package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/Santander-alt/catalogo/app/helpers"
	"github.com/Santander-alt/catalogo/app/models"
	"github.com/Santander-alt/catalogo/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryForm struct {
	Name string `json:"name" validate:"required"`
}

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	validator    *validator.Validate
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryImpl, renderer *render.Render, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		render:       renderer,
		validator:    validate,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al obtener las categorías"})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("CategoryHandler.Create: cuerpo inválido: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al crear la categoría"})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("CategoryHandler.Create: validación: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "Error al crear la categoría: " + helpers.ValidationMessage(validationErrors),
		})
		return
	}

	category := &models.Category{Name: form.Name}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al crear la categoría"})
		return
	}

	h.render.JSON(w, http.StatusCreated, ResultResponse{
		Message: "Categoría creada",
		Result:  category,
	})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseID(mux.Vars(r)["id"])

	var form CategoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("CategoryHandler.Update: cuerpo inválido: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al actualizar la categoría"})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("CategoryHandler.Update: validación: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "Error al actualizar la categoría: " + helpers.ValidationMessage(validationErrors),
		})
		return
	}

	// Cero filas afectadas (id inexistente o no numérico) también
	// responde éxito, igual que el comportamiento original.
	if _, err := h.categoryRepo.Update(r.Context(), id, form.Name); err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al actualizar la categoría"})
		return
	}

	h.render.JSON(w, http.StatusOK, MessageResponse{Message: "Categoría actualizada"})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseID(mux.Vars(r)["id"])

	if _, err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("CategoryHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error al eliminar la categoría"})
		return
	}

	h.render.JSON(w, http.StatusOK, MessageResponse{Message: "Categoría eliminada"})
}

// parseID convierte el segmento {id} de la ruta. Un valor no numérico
// devuelve 0, que no casa con ninguna fila: el mismo "no match" que
// producía la coerción a NaN en el backend original.
func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
