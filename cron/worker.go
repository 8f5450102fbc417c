package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	inquiryRepo "everafter/database/repository/inquiry"
	"everafter/models"
	"everafter/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InquiryStore is what delivery needs from the inquiry repository.
type InquiryStore interface {
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	MarkDelivered(ctx context.Context, id string) error
}

// DeliveryWorker processes queued inquiry deliveries.
type DeliveryWorker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewDeliveryWorker wires the inquiry:deliver handler onto an asynq server.
func NewDeliveryWorker(redisOpt asynq.RedisClientOpt, store InquiryStore, logger *zap.Logger) *DeliveryWorker {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDeliverInquiry, HandleDeliveryTask(store, logger))
	return &DeliveryWorker{srv: srv, mux: mux}
}

// Start runs the worker in the background.
func (w *DeliveryWorker) Start() error {
	return w.srv.Start(w.mux)
}

// Shutdown waits for in-flight deliveries and stops the worker.
func (w *DeliveryWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleDeliveryTask loads the inquiry, hands it to the vendor and marks it
// delivered. Unknown or already delivered inquiries are not retried.
func HandleDeliveryTask(store InquiryStore, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.DeliveryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid delivery payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}

		inquiry, err := store.GetByID(ctx, p.InquiryID)
		if errors.Is(err, inquiryRepo.ErrInquiryNotFound) {
			logger.Warn("inquiry to deliver not found", zap.String("inquiry", p.InquiryID))
			return fmt.Errorf("inquiry %s: %w", p.InquiryID, asynq.SkipRetry)
		}
		if err != nil {
			return err
		}
		if inquiry.Delivered {
			return nil
		}

		logger.Info("delivering inquiry",
			zap.String("inquiry", inquiry.ID),
			zap.String("vendor", inquiry.VendorSlug),
			zap.String("from", inquiry.From),
			zap.String("to", inquiry.To),
			zap.Int("guests", inquiry.Guests.Total()),
			zap.String("contact", inquiry.Contact.Email))

		if err := store.MarkDelivered(ctx, inquiry.ID); err != nil {
			logger.Error("failed to mark inquiry delivered", zap.String("inquiry", inquiry.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
