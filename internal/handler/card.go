package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type CardHandler struct {
	service      *service.CardService
	logger       *zap.Logger
	defaultActor string
}

func NewCardHandler(srv *service.CardService, logger *zap.Logger, defaultActor string) *CardHandler {
	return &CardHandler{service: srv, logger: logger, defaultActor: defaultActor}
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req service.CreateCardInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	card, err := h.service.Create(r.Context(), req, actor(r, h.defaultActor))
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, card)
}

// Patch dispatches on the body shape, the same way the single cards PATCH
// route always has: archive toggle, then move, then plain field update.
func (h *CardHandler) Patch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	switch {
	case hasKey(raw, "cardId") && isBool(raw["archived"]):
		h.setArchived(w, r, body)
	case hasKey(raw, "cardId") && hasKey(raw, "toColumnId") && hasKey(raw, "orderedCardIdsInToColumn"):
		h.move(w, r, body)
	default:
		h.update(w, r, raw)
	}
}

func (h *CardHandler) setArchived(w http.ResponseWriter, r *http.Request, body []byte) {
	var req struct {
		CardID   string `json:"cardId"`
		Archived bool   `json:"archived"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	card, err := h.service.SetArchived(r.Context(), service.ArchiveCardInput{
		CardID:   req.CardID,
		Archived: req.Archived,
	}, actor(r, h.defaultActor))
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, card)
}

func (h *CardHandler) move(w http.ResponseWriter, r *http.Request, body []byte) {
	var req struct {
		CardID                     string   `json:"cardId"`
		FromColumnID               string   `json:"fromColumnId"`
		ToColumnID                 string   `json:"toColumnId"`
		OrderedCardIDsInToColumn   []string `json:"orderedCardIdsInToColumn"`
		OrderedCardIDsInFromColumn []string `json:"orderedCardIdsInFromColumn"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	err := h.service.Move(r.Context(), service.MoveCardInput{
		CardID:                     req.CardID,
		FromColumnID:               req.FromColumnID,
		ToColumnID:                 req.ToColumnID,
		OrderedCardIDsInToColumn:   req.OrderedCardIDsInToColumn,
		OrderedCardIDsInFromColumn: req.OrderedCardIDsInFromColumn,
	}, actor(r, h.defaultActor))
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.OK(w, r)
}

func (h *CardHandler) update(w http.ResponseWriter, r *http.Request, raw map[string]json.RawMessage) {
	in, err := decodeUpdateCard(raw)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	card, err := h.service.Update(r.Context(), in, actor(r, h.defaultActor))
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, card)
}

// decodeUpdateCard keeps absent-vs-null apart: a missing dueDate leaves the
// field alone, an explicit null clears it.
func decodeUpdateCard(raw map[string]json.RawMessage) (service.UpdateCardInput, error) {
	var in service.UpdateCardInput

	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &in.ID); err != nil {
			return in, err
		}
	}
	if v, ok := raw["title"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &in.Title); err != nil {
			return in, err
		}
	}
	if v, ok := raw["description"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &in.Description); err != nil {
			return in, err
		}
	}
	if v, ok := raw["tags"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &in.Tags); err != nil {
			return in, err
		}
	}
	if v, ok := raw["priority"]; ok && !isNull(v) {
		var p model.Priority
		if err := json.Unmarshal(v, &p); err != nil {
			return in, err
		}
		in.Priority = &p
	}
	if v, ok := raw["dueDate"]; ok {
		in.DueDateSet = true
		if !isNull(v) {
			if err := json.Unmarshal(v, &in.DueDate); err != nil {
				return in, err
			}
		}
	}
	return in, nil
}

func hasKey(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]
	return ok && !isNull(v)
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}

func isBool(v json.RawMessage) bool {
	s := string(v)
	return s == "true" || s == "false"
}
