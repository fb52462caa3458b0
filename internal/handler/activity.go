package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type ActivityHandler struct {
	service *service.ActivityService
	logger  *zap.Logger
}

func NewActivityHandler(srv *service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{service: srv, logger: logger}
}

// List returns a card's audit trail, newest first unless asked otherwise.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	desc := !strings.EqualFold(r.URL.Query().Get("order"), "asc")

	acts, err := h.service.ListByCard(r.Context(), chi.URLParam(r, "id"), desc)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, acts)
}
