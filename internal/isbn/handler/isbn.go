package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"isbnsplit/internal/isbn/service"
	"isbnsplit/internal/isbn/validator"
	apperrors "isbnsplit/pkg/errors"
	httputil "isbnsplit/pkg/http"
	"isbnsplit/pkg/logger"
	"isbnsplit/pkg/model"
)

type ISBNHandler struct {
	service   service.DecomposerService
	validator *validator.ISBNValidator
	maxLength int
	log       *logger.Logger
}

func NewISBNHandler(
	service service.DecomposerService,
	validator *validator.ISBNValidator,
	maxLength int,
	log *logger.Logger,
) *ISBNHandler {
	return &ISBNHandler{
		service:   service,
		validator: validator,
		maxLength: maxLength,
		log:       log,
	}
}

func (h *ISBNHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/isbn/decompose", h.Decompose)
}

func (h *ISBNHandler) Decompose(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.DecomposeRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid JSON format"))
		return
	}

	if err := h.validator.ValidateRequest(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.writeError(w, apperrors.Validation("Request validation failed", verrs.Details()))
			return
		}
		h.writeError(w, apperrors.Internal("Request validation failed", err))
		return
	}

	if len(req.ISBN) > h.maxLength {
		h.writeError(w, apperrors.InputTooLong(h.maxLength))
		return
	}

	result, err := h.service.Decompose(r.Context(), req.ISBN)
	if err != nil {
		h.writeError(w, err)
		return
	}

	groups, _ := result.Groups()
	if err := httputil.WriteSuccess(w, groups.Decomposition()); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Decompose", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ISBNHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", "Decompose", "operation", "WriteError", "error", writeErr)
	}
}
