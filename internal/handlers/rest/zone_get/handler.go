package zone_get

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"skusync/internal/generated/dto"
	"skusync/pkg/logger"
)

type Handler struct {
	log   handlerLogger
	zones ZoneTable
}

func New(log handlerLogger, zones ZoneTable) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		zones: zones,
	}
}

// ServeHTTP отвечает зоной доставки штата. Неизвестный штат не
// считается ошибкой: возвращается зона по умолчанию с default=true.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["state"]))

	zone, known := h.zones.ZoneFor(state)

	res := dto.ZoneResponse{
		Default:     !known,
		State:       state,
		States:      zone.States,
		Timezone:    zone.Timezone,
		TransitDays: zone.TransitDays,
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
