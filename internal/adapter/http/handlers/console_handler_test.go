package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/infrastructure/workshopapi"
)

func TestConsoleHandler_GetState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sess, _, _ := newSession(ctrl)
	h := NewConsoleHandler(sess)

	r := gin.New()
	r.GET("/console/state", h.GetState)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/console/state", nil))

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["view"] != "listado" || body["loading"] != false || body["error"] != "" {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestConsoleHandler_SetView(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		h := NewConsoleHandler(sess)

		r := gin.New()
		r.PUT("/console/view", h.SetView)

		req := httptest.NewRequest(http.MethodPut, "/console/view", bytes.NewBufferString(`{"view":"canceladas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["view"] != "canceladas" {
			t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, _, _ := newSession(ctrl)
		h := NewConsoleHandler(sess)

		r := gin.New()
		r.PUT("/console/view", h.SetView)

		req := httptest.NewRequest(http.MethodPut, "/console/view", bytes.NewBufferString(`{"view":"facturas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestConsoleHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("loads both collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, bikeGW, orderGW := newSession(ctrl)
		h := NewConsoleHandler(sess)

		bikeGW.EXPECT().ListBikes(gomock.Any()).Return([]entities.Bike{{ID: 1}}, nil)
		orderGW.EXPECT().ListWorkOrders(gomock.Any()).Return([]entities.WorkOrder{{ID: 1}, {ID: 2}}, nil)

		r := gin.New()
		r.POST("/console/refresh", h.Refresh)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/console/refresh", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(sess.Bikes()) != 1 || len(sess.Orders()) != 2 {
			t.Fatalf("session not loaded: bikes=%d orders=%d", len(sess.Bikes()), len(sess.Orders()))
		}
	})

	t.Run("one side failing sets the banner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sess, bikeGW, orderGW := newSession(ctrl)
		h := NewConsoleHandler(sess)

		bikeGW.EXPECT().ListBikes(gomock.Any()).
			Return(nil, &workshopapi.NetworkError{Op: "GET /bikes"})
		orderGW.EXPECT().ListWorkOrders(gomock.Any()).Return([]entities.WorkOrder{{ID: 1}}, nil)

		r := gin.New()
		r.POST("/console/refresh", h.Refresh)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/console/refresh", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if sess.ErrorMessage() != "Error al cargar las motos" {
			t.Fatalf("banner = %q", sess.ErrorMessage())
		}
		// The side that succeeded still loaded.
		if len(sess.Orders()) != 1 {
			t.Fatalf("orders = %+v", sess.Orders())
		}
	})
}

func TestConsoleHandler_DismissError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sess, _, _ := newSession(ctrl)
	h := NewConsoleHandler(sess)

	gen := sess.BeginBikeLoad()
	sess.FailBikeLoad(gen, "Error al cargar las motos")

	r := gin.New()
	r.POST("/console/error/dismiss", h.DismissError)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/console/error/dismiss", nil))

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["error"] != "" {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if sess.ErrorMessage() != "" {
		t.Fatalf("banner not cleared: %q", sess.ErrorMessage())
	}
}
