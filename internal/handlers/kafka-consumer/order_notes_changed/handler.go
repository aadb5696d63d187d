package order_notes_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"skusync/internal/gateway/skulabs"
	"skusync/pkg/logger"
)

// notesChangedEvent — событие об изменении заметок заказа.
type notesChangedEvent struct {
	OrderNumber string `json:"order_number"`
}

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.notes.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.notes.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event notesChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.notes.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	if event.OrderNumber == "" {
		h.log.With(
			logger.NewField("offset", message.Offset),
		).Error("order.notes.changed handler received message without order number")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderNumber),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.notes.changed processing")

	err = h.service.ProcessOrderNumber(ctx, event.OrderNumber)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.notes.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, skulabs.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.notes.changed handler order not found upstream")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.notes.changed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.notes.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
