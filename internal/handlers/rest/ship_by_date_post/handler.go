package ship_by_date_post

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skusync/internal/generated/dto"
	"skusync/internal/service/deliverydate"
	"skusync/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	parser       NotesParser
	calculator   ShipDateCalculator
	warehouseLoc *time.Location
}

func New(log handlerLogger, parser NotesParser, calculator ShipDateCalculator) (*Handler, error) {
	handlerLog := log.With()

	warehouseLoc, err := time.LoadLocation(deliverydate.DefaultWarehouseTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", deliverydate.DefaultWarehouseTimezone, err)
	}

	return &Handler{
		log:          handlerLog,
		parser:       parser,
		calculator:   calculator,
		warehouseLoc: warehouseLoc,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ShipByDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var orderInstant *time.Time
	if req.OrderDate != nil && *req.OrderDate != "" {
		parsed, err := deliverydate.ParseInstant(*req.OrderDate, h.warehouseLoc)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		orderInstant = &parsed
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	facts := h.parser.Parse(notes)
	shipBy := h.calculator.LatestShippingDate(facts, orderInstant)

	res := dto.ShipByDateResponse{}
	if shipBy != nil {
		formatted := shipBy.Format(time.RFC3339)
		res.ShipByDate = &formatted
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
