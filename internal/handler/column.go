package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

type ColumnHandler struct {
	service *service.ColumnService
	logger  *zap.Logger
}

func NewColumnHandler(srv *service.ColumnService, logger *zap.Logger) *ColumnHandler {
	return &ColumnHandler{service: srv, logger: logger}
}

func (h *ColumnHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req service.CreateColumnInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	col, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, col)
}

// Patch dispatches reorder vs field update on body shape.
func (h *ColumnHandler) Patch(w http.ResponseWriter, r *http.Request) {
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

	if hasKey(raw, "orderedColumnIds") {
		var req service.ReorderColumnsInput
		if err := json.Unmarshal(body, &req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, "invalid json")
			return
		}
		if err := h.service.Reorder(r.Context(), req); err != nil {
			handleErrors(w, r, h.logger, err)
			return
		}
		respond.OK(w, r)
		return
	}

	in, err := decodeUpdateColumn(raw)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	col, err := h.service.Update(r.Context(), in)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, col)
}

func (h *ColumnHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.OK(w, r)
}

// decodeUpdateColumn treats wipLimit:null as an explicit clear, while an
// absent wipLimit leaves the limit untouched.
func decodeUpdateColumn(raw map[string]json.RawMessage) (service.UpdateColumnInput, error) {
	var in service.UpdateColumnInput

	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &in.ID); err != nil {
			return in, err
		}
	}
	if v, ok := raw["name"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &in.Name); err != nil {
			return in, err
		}
	}
	if v, ok := raw["wipLimit"]; ok {
		in.WIPLimitSet = true
		if !isNull(v) {
			if err := json.Unmarshal(v, &in.WIPLimit); err != nil {
				return in, err
			}
		}
	}
	return in, nil
}
