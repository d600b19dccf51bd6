package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "taller_moto/internal/adapter/http/dto/request"
	response "taller_moto/internal/adapter/http/dto/response"
	"taller_moto/internal/console"
	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase"
	"taller_moto/pkg"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidOrderID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order id", http.StatusBadRequest)
	errUnknownStatusFilter = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown status filter", http.StatusBadRequest)
)

// OrderHandler serves the work order views: the listing with its status
// filters, order creation from a draft, and workflow transitions.

type OrderHandler struct {
	session *console.Session
	drafts  usecase.IOrderDraftUseCase
	status  usecase.IOrderStatusUseCase
}

func NewOrderHandler(session *console.Session, drafts usecase.IOrderDraftUseCase, status usecase.IOrderStatusUseCase) *OrderHandler {
	return &OrderHandler{session: session, drafts: drafts, status: status}
}

// ListOrders returns the loaded order collection, optionally narrowed to a
// single status (?status=CANCELADA backs the cancelled view, ENTREGADA the
// delivered one).
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.session.Orders()

	if raw := c.Query("status"); raw != "" {
		status := entities.OrderStatus(raw)
		if !entities.ValidOrderStatus(status) {
			c.JSON(errUnknownStatusFilter.HTTPStatus, errUnknownStatusFilter.ToHTTPError())
			return
		}
		var matched []entities.WorkOrder
		for _, order := range orders {
			if order.Status == status {
				matched = append(matched, order)
			}
		}
		orders = matched
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// GetOrder returns a single loaded order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	order, ok := h.session.OrderByID(id)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// CreateOrder submits a draft: the line items are validated into a ledger,
// the total is computed server-side and the new order always starts in
// RECIBIDA. The collection is reloaded on success.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.session.ClearError()

	order, err := h.drafts.Submit(c.Request.Context(), draft)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.session.RefreshOrders(c.Request.Context()); err != nil {
		log.Printf("[console][orders] reload after creation failed err=%v", err)
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

// ChangeStatus applies a workflow transition and returns the order with the
// status the backend actually applied.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	requested, err := payload.ResolveStatus()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.session.ClearError()

	applied, err := h.status.ChangeStatus(c.Request.Context(), id, requested)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if order, ok := h.session.OrderByID(id); ok {
		c.JSON(http.StatusOK, response.FromWorkOrder(order))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(entities.WorkOrder{ID: id, Status: applied}))
}

// Summary aggregates the loaded collections for the dashboard header.
func (h *OrderHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, response.BuildSummary(h.session.Bikes(), h.session.Orders()))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPlaca),
		errors.Is(err, usecase.ErrMissingFault),
		errors.Is(err, usecase.ErrEmptyLedger),
		errors.Is(err, usecase.ErrItemType),
		errors.Is(err, usecase.ErrItemDescription),
		errors.Is(err, usecase.ErrItemCount),
		errors.Is(err, usecase.ErrItemUnitValue):
		return pkg.NewDomainError("INVALID_ORDER_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPlaca):
		return pkg.NewDomainError("BIKE_NOT_FOUND", "Placa does not match a registered bike", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Work order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	default:
		return mapUpstreamError(err)
	}
}
