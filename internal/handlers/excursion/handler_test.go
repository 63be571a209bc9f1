package excursion_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "tourbook/infras/otel/mocks"
	"tourbook/internal/domains/excursion/mocks"
	"tourbook/internal/domains/excursion/model"
	"tourbook/internal/domains/excursion/model/dto"
	"tourbook/internal/handlers/excursion"
	"tourbook/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockExcursion, http.Handler) {
	t.Helper()

	svc := mocks.NewMockExcursion(gomock.NewController(t))
	handler := excursion.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func message(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body.Message
}

func TestCreateExcursion(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req dto.CreateExcursionRequest) (model.Excursion, error) {
			assert.Equal(t, "Cenotes", req.Nombre)
			require.NotNil(t, req.Precio)
			assert.InDelta(t, 1200.0, *req.Precio, 0.001)

			return model.Excursion{ID: "cenotes-1700000000000"}, nil
		})

	recorder := serve(router, http.MethodPost, "/excursiones", `{"nombre":"Cenotes","precio":1200,"ubicacion":"Tulum","duracion":"4 horas"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"id":"cenotes-1700000000000"}`, recorder.Body.String())
}

func TestCreateExcursion_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodPost, "/excursiones", `{"nombre":`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Excursion{}, failure.BadRequestFromString("precio is required"))

		recorder := serve(router, http.MethodPost, "/excursiones", `{"nombre":"Cenotes"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "precio is required", message(t, recorder))
	})
}

func TestGetExcursions_Filters(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		List(gomock.Any(), dto.ExcursionFilter{Categoria: "Cultural", Ubicacion: "Yucatán"}).
		Return([]model.Excursion{{ID: "tour-chichen-itza-1700000000000"}})

	recorder := serve(router, http.MethodGet, "/excursiones?categoria=Cultural&ubicacion=Yucat%C3%A1n", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var excursions []model.Excursion
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &excursions))
	require.Len(t, excursions, 1)
	assert.Equal(t, "tour-chichen-itza-1700000000000", excursions[0].ID)
}

func TestGetExcursionByID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), "cenotes-1").Return(model.Excursion{ID: "cenotes-1", Nombre: "Cenotes"}, true)
	svc.EXPECT().Get(gomock.Any(), "missing").Return(model.Excursion{}, false)

	found := serve(router, http.MethodGet, "/excursiones/cenotes-1", "")
	assert.Equal(t, http.StatusOK, found.Code)
	assert.Contains(t, found.Body.String(), `"nombre":"Cenotes"`)

	missing := serve(router, http.MethodGet, "/excursiones/missing", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "excursion not found", message(t, missing))
}

func TestUpdateAndDeleteExcursion(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Update(gomock.Any(), "cenotes-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req dto.UpdateExcursionRequest) (model.Excursion, error) {
			require.NotNil(t, req.Destacada)
			assert.True(t, *req.Destacada)
			assert.Nil(t, req.Nombre)

			return model.Excursion{ID: "cenotes-1", Destacada: true}, nil
		})
	svc.EXPECT().Delete(gomock.Any(), "cenotes-1").Return(nil)
	svc.EXPECT().Delete(gomock.Any(), "missing").Return(failure.NotFound("excursion not found"))

	updated := serve(router, http.MethodPut, "/excursiones/cenotes-1", `{"destacada":true}`)
	assert.Equal(t, http.StatusOK, updated.Code)
	assert.Contains(t, updated.Body.String(), `"destacada":true`)

	deleted := serve(router, http.MethodDelete, "/excursiones/cenotes-1", "")
	assert.Equal(t, http.StatusOK, deleted.Code)

	missing := serve(router, http.MethodDelete, "/excursiones/missing", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestCatalogLookups(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Categories(gomock.Any()).Return([]string{"Cultural", "Aventura"})
	svc.EXPECT().Locations(gomock.Any()).Return([]string{"Yucatán"})
	svc.EXPECT().Featured(gomock.Any()).Return([]model.Excursion{{ID: "a"}})

	assert.JSONEq(t, `["Cultural","Aventura"]`, serve(router, http.MethodGet, "/excursiones/categorias", "").Body.String())
	assert.JSONEq(t, `["Yucatán"]`, serve(router, http.MethodGet, "/excursiones/ubicaciones", "").Body.String())
	assert.Contains(t, serve(router, http.MethodGet, "/excursiones/destacadas", "").Body.String(), `"id":"a"`)
}

func TestImages(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		UploadImage(gomock.Any(), "cenotes-1", dto.UploadImageRequest{Imagen: "data:image/png;base64,iVBORw0KGgo="}).
		Return(model.Excursion{ID: "cenotes-1", Imagen: "https://cdn.example.com/a.png"}, nil)
	svc.EXPECT().
		RemoveImage(gomock.Any(), "cenotes-1", "https://cdn.example.com/a.png").
		Return(model.Excursion{ID: "cenotes-1"}, nil)

	uploaded := serve(router, http.MethodPost, "/excursiones/cenotes-1/imagenes", `{"imagen":"data:image/png;base64,iVBORw0KGgo="}`)
	assert.Equal(t, http.StatusOK, uploaded.Code)
	assert.Contains(t, uploaded.Body.String(), "https://cdn.example.com/a.png")

	removed := serve(router, http.MethodDelete, "/excursiones/cenotes-1/imagenes?url=https%3A%2F%2Fcdn.example.com%2Fa.png", "")
	assert.Equal(t, http.StatusOK, removed.Code)

	missingURL := serve(router, http.MethodDelete, "/excursiones/cenotes-1/imagenes", "")
	assert.Equal(t, http.StatusBadRequest, missingURL.Code)
	assert.Equal(t, "url is required", message(t, missingURL))
}
