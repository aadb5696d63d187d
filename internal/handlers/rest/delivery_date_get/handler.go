package delivery_date_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"skusync/internal/generated/dto"
	"skusync/internal/pkg/shippingzones"
	"skusync/internal/service/deliverydate"
	"skusync/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	zones   ZoneTable
}

func New(log handlerLogger, service Service, zones ZoneTable) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		zones:   zones,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	state := strings.TrimSpace(query.Get("state"))
	if state == "" {
		state = shippingzones.DefaultState
	}

	deliveryDate, err := h.service.ComputeDeliveryDate(deliverydate.DeliveryDateQuery{
		State:        state,
		OrderInstant: query.Get("date"),
		Format:       query.Get("format"),
	})
	if err != nil {
		switch {
		case errors.Is(err, deliverydate.ErrParseInstant),
			errors.Is(err, deliverydate.ErrUnknownTimezone):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	zone, _ := h.zones.ZoneFor(state)
	res := dto.DeliveryDateResponse{
		DeliveryDate: deliveryDate,
		State:        strings.ToUpper(state),
		Timezone:     zone.Timezone,
		TransitDays:  zone.TransitDays,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(res)
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
