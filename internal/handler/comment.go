package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type CommentHandler struct {
	service      *service.CommentService
	logger       *zap.Logger
	defaultActor string
}

func NewCommentHandler(srv *service.CommentService, logger *zap.Logger, defaultActor string) *CommentHandler {
	return &CommentHandler{service: srv, logger: logger, defaultActor: defaultActor}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	desc := strings.EqualFold(r.URL.Query().Get("order"), "desc")

	comments, err := h.service.ListByCard(r.Context(), chi.URLParam(r, "id"), desc)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Author == "" {
		req.Author = actor(r, h.defaultActor)
	}

	comment, err := h.service.Create(r.Context(), chi.URLParam(r, "id"), req.Author, req.Body)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   string `json:"id"`
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	comment, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req.ID, req.Body)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, comment)
}
