package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"everafter/config"

	"github.com/hibiken/asynq"
)

const TypeDeliverInquiry = "inquiry:deliver"

const deliveryMaxRetry = 5

// DeliveryPayload identifies the stored inquiry to hand to the vendor.
type DeliveryPayload struct {
	InquiryID string `json:"inquiryId"`
}

func NewDeliveryTask(inquiryID string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(DeliveryPayload{InquiryID: inquiryID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeliverInquiry, b)
	opts := []asynq.Option{
		asynq.MaxRetry(deliveryMaxRetry),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// RedisOpt is the asynq connection for the queue database.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Enqueuer is the subset of *asynq.Client used to queue tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqDispatcher queues inquiry deliveries.
type AsynqDispatcher struct {
	client Enqueuer
}

func NewAsynqDispatcher(client Enqueuer) *AsynqDispatcher {
	return &AsynqDispatcher{client: client}
}

func (d *AsynqDispatcher) EnqueueDelivery(ctx context.Context, inquiryID string) error {
	task, opts, err := NewDeliveryTask(inquiryID)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue delivery for %s: %w", inquiryID, err)
	}
	return nil
}
