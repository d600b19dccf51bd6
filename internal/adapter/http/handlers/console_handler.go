package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "taller_moto/internal/adapter/http/dto/request"
	response "taller_moto/internal/adapter/http/dto/response"
	"taller_moto/internal/console"
	"taller_moto/pkg"
)

var (
	errUnknownView = pkg.NewDomainErrorSimple("UNKNOWN_VIEW", "Unknown view", http.StatusBadRequest)
)

// ConsoleHandler serves the console's UI state: active view, loading flag
// and the error banner.

type ConsoleHandler struct {
	session *console.Session
}

func NewConsoleHandler(session *console.Session) *ConsoleHandler {
	return &ConsoleHandler{session: session}
}

func (h *ConsoleHandler) state() response.StateResponse {
	return response.StateResponse{
		View:    string(h.session.View()),
		Loading: h.session.Loading(),
		Error:   h.session.ErrorMessage(),
	}
}

// GetState returns the current UI state.
func (h *ConsoleHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.state())
}

// SetView switches the active sub-view.
func (h *ConsoleHandler) SetView(c *gin.Context) {
	var payload request.SetViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errUnknownView.HTTPStatus, errUnknownView.ToHTTPError())
		return
	}

	view, err := console.ParseView(payload.View)
	if err != nil {
		c.JSON(errUnknownView.HTTPStatus, errUnknownView.ToHTTPError())
		return
	}

	h.session.SetView(view)
	c.JSON(http.StatusOK, h.state())
}

// Refresh reloads both collections from the backend, the way the console
// does on mount. A failed side sets the error banner; the state is returned
// either way so the UI can render the banner.
func (h *ConsoleHandler) Refresh(c *gin.Context) {
	h.session.ClearError()

	if err := h.session.RefreshAll(c.Request.Context()); err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"state":   h.state(),
		})
		return
	}

	c.JSON(http.StatusOK, h.state())
}

// DismissError clears the error banner.
func (h *ConsoleHandler) DismissError(c *gin.Context) {
	h.session.ClearError()
	c.JSON(http.StatusOK, h.state())
}
