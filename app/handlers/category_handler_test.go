package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Santander-alt/catalogo/app/models"
	"github.com/Santander-alt/catalogo/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	ListErr    error
	CreateErr  error
	UpdateErr  error
	DeleteErr  error

	LastSaved       *models.Category
	LastUpdatedID   uint
	LastUpdatedName string
	LastDeletedID   uint
	DeleteCalls     int
	UpdateRows      int64
	DeleteRows      int64
}

func (m *MockCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			return &m.Categories[i], nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	c, err := m.GetByID(ctx, id)
	return c != nil, err
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	category.ID = uint(len(m.Categories) + 1)
	m.LastSaved = category
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepo) Update(ctx context.Context, id uint, name string) (int64, error) {
	m.LastUpdatedID = id
	m.LastUpdatedName = name
	return m.UpdateRows, m.UpdateErr
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id uint) (int64, error) {
	m.DeleteCalls++
	m.LastDeletedID = id
	return m.DeleteRows, m.DeleteErr
}

func newCategoryHandler(repo *MockCategoryRepo) *CategoryHandler {
	return NewCategoryHandler(repo, renderer.New(), validator.New())
}

// --- Tests: GET /api/categories ---

func TestCategoryList(t *testing.T) {
	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Categories: []models.Category{
						{ID: 1, Name: "Bebidas"},
						{ID: 2, Name: "Limpieza"},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []models.Category
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, uint(1), resp[0].ID)
				assert.Equal(t, "Limpieza", resp[1].Name)
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{ListErr: errors.New("db caída")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp MessageResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Error al obtener las categorías", resp.Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := newCategoryHandler(mockRepo)
			req := httptest.NewRequest("GET", "/api/categories", nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: POST /api/categories ---

func TestCategoryCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Bebidas"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp struct {
					Message string          `json:"message"`
					Result  models.Category `json:"result"`
				}
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Categoría creada", resp.Message)
				assert.Equal(t, uint(1), resp.Result.ID)
				assert.Equal(t, "Bebidas", resp.Result.Name)
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Bebidas", repo.LastSaved.Name)
			},
		},
		{
			name:        "Invalid JSON body",
			requestBody: `{invalid json`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved)
			},
		},
		{
			name:        "Missing name",
			requestBody: `{}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp MessageResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Contains(t, resp.Message, "Error al crear la categoría")
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved)
			},
		},
		{
			name:        "Repository error on create",
			requestBody: `{"name":"Bebidas"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{CreateErr: fmt.Errorf("%w: insert falló", models.ErrPersistence)}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp MessageResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Error al crear la categoría", resp.Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := newCategoryHandler(mockRepo)
			req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

// --- Tests: PUT /api/categories/{id} ---

func TestCategoryUpdate(t *testing.T) {
	testCases := []struct {
		name               string
		pathID             string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:        "Success",
			pathID:      "3",
			requestBody: `{"name":"Postres"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{UpdateRows: 1}
			},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, uint(3), repo.LastUpdatedID)
				assert.Equal(t, "Postres", repo.LastUpdatedName)
			},
		},
		{
			// Id inexistente: cero filas afectadas y aun así éxito.
			name:        "Missing id is a silent no-op",
			pathID:      "99",
			requestBody: `{"name":"Postres"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{UpdateRows: 0}
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			// Id no numérico se coerce a 0, que no casa con nada.
			name:        "Non-numeric id is a silent no-op",
			pathID:      "abc",
			requestBody: `{"name":"Postres"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{UpdateRows: 0}
			},
			expectedStatusCode: http.StatusOK,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Equal(t, uint(0), repo.LastUpdatedID)
			},
		},
		{
			name:        "Repository error",
			pathID:      "3",
			requestBody: `{"name":"Postres"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{UpdateErr: errors.New("db caída")}
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := newCategoryHandler(mockRepo)
			req := httptest.NewRequest("PUT", "/api/categories/"+tc.pathID, strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			req = mux.SetURLVars(req, map[string]string{"id": tc.pathID})
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

// --- Tests: DELETE /api/categories/{id} ---

func TestCategoryDeleteIdempotent(t *testing.T) {
	mockRepo := &MockCategoryRepo{DeleteRows: 1}
	handler := newCategoryHandler(mockRepo)

	for i := 0; i < 2; i++ {
		if i == 1 {
			mockRepo.DeleteRows = 0 // ya no existe
		}
		req := httptest.NewRequest("DELETE", "/api/categories/5", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp MessageResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Categoría eliminada", resp.Message)
	}

	assert.Equal(t, 2, mockRepo.DeleteCalls)
	assert.Equal(t, uint(5), mockRepo.LastDeletedID)
}
