package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"taller_moto/internal/adapter/http/handlers/mocks"
	"taller_moto/internal/domain/entities"
	"taller_moto/internal/infrastructure/workshopapi"
	"taller_moto/internal/usecase"
)

func TestBikeHandler_ListBikes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	loaded := []entities.Bike{
		{ID: 1, Placa: "ABC-123", Brand: "Honda", Model: "CB500", Cylinder: "500cc"},
		{ID: 2, Placa: "XYZ-987", Brand: "Yamaha", Model: "FZ25", Cylinder: "250cc"},
	}

	t.Run("full collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		seedBikes(t, sess, loaded)
		h := NewBikeHandler(sess, mocks.NewMockIOrderDraftUseCase(ctrl))

		r := gin.New()
		r.GET("/console/bikes", h.ListBikes)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/console/bikes", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("picker query narrows by plate or brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		seedBikes(t, sess, loaded)
		h := NewBikeHandler(sess, mocks.NewMockIOrderDraftUseCase(ctrl))

		r := gin.New()
		r.GET("/console/bikes", h.ListBikes)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/console/bikes?q=hon", nil))

		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["placa"] != "ABC-123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no match yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		seedBikes(t, sess, loaded)
		h := NewBikeHandler(sess, mocks.NewMockIOrderDraftUseCase(ctrl))

		r := gin.New()
		r.GET("/console/bikes", h.ListBikes)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/console/bikes?q=ducati", nil))

		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestBikeHandler_RegisterBike(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validPayload := `{"placa":"ABC-123","brand":"Honda","model":"CB500","cylinder":"500cc","cliente":{"nombre":"Juan Pérez","telefono":"3101234567"}}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		h := NewBikeHandler(sess, mocks.NewMockIOrderDraftUseCase(ctrl))

		r := gin.New()
		r.POST("/console/bikes", h.RegisterBike)

		req := httptest.NewRequest(http.MethodPost, "/console/bikes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		uc := mocks.NewMockIOrderDraftUseCase(ctrl)
		h := NewBikeHandler(sess, uc)

		uc.EXPECT().RegisterBike(gomock.Any(), gomock.Any()).Return(entities.Bike{}, usecase.ErrInvalidTelefono)

		r := gin.New()
		r.POST("/console/bikes", h.RegisterBike)

		req := httptest.NewRequest(http.MethodPost, "/console/bikes", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_BIKE_INPUT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("backend rejection surfaces its message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		uc := mocks.NewMockIOrderDraftUseCase(ctrl)
		h := NewBikeHandler(sess, uc)

		uc.EXPECT().RegisterBike(gomock.Any(), gomock.Any()).
			Return(entities.Bike{}, &workshopapi.BackendError{StatusCode: http.StatusConflict, Message: "Placa duplicada"})

		r := gin.New()
		r.POST("/console/bikes", h.RegisterBike)

		req := httptest.NewRequest(http.MethodPost, "/console/bikes", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UPSTREAM_REJECTED" || body["message"] != "Placa duplicada" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success reloads the collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, bikeGW, _ := newSession(ctrl)
		uc := mocks.NewMockIOrderDraftUseCase(ctrl)
		h := NewBikeHandler(sess, uc)

		created := entities.Bike{ID: 4, Placa: "ABC-123", Brand: "Honda", Model: "CB500", Cylinder: "500cc"}
		uc.EXPECT().RegisterBike(gomock.Any(), gomock.Any()).Return(created, nil)
		bikeGW.EXPECT().ListBikes(gomock.Any()).Return([]entities.Bike{created}, nil)

		r := gin.New()
		r.POST("/console/bikes", h.RegisterBike)

		req := httptest.NewRequest(http.MethodPost, "/console/bikes", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if got := sess.Bikes(); len(got) != 1 || got[0].ID != 4 {
			t.Fatalf("session bikes = %+v", got)
		}
	})
}

func TestMapBikeError(t *testing.T) {
	for _, err := range []error{
		usecase.ErrInvalidPlaca, usecase.ErrMissingBrand, usecase.ErrMissingModel,
		usecase.ErrMissingCylinder, usecase.ErrInvalidNombre, usecase.ErrInvalidTelefono,
		usecase.ErrInvalidEmail,
	} {
		if got := mapBikeError(err); got.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("mapBikeError(%v) status = %d, want 400", err, got.HTTPStatus)
		}
	}
	if got := mapBikeError(&workshopapi.NetworkError{Op: "GET /bikes"}); got.HTTPStatus != http.StatusBadGateway || got.Code != "UPSTREAM_UNAVAILABLE" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
