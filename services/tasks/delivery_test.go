package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	r.opts = append(r.opts, opts)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func TestEnqueueDelivery(t *testing.T) {
	q := &recordingEnqueuer{}
	d := NewAsynqDispatcher(q)

	require.NoError(t, d.EnqueueDelivery(context.Background(), "inq-1"))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeDeliverInquiry, q.tasks[0].Type())

	var p DeliveryPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload(), &p))
	assert.Equal(t, "inq-1", p.InquiryID)

	var retry int
	for _, o := range q.opts[0] {
		if o.Type() == asynq.MaxRetryOpt {
			retry = o.Value().(int)
		}
	}
	assert.Equal(t, 5, retry)
}

func TestEnqueueDeliveryError(t *testing.T) {
	q := &recordingEnqueuer{err: errors.New("redis down")}
	err := NewAsynqDispatcher(q).EnqueueDelivery(context.Background(), "inq-1")
	assert.ErrorIs(t, err, q.err)
}
