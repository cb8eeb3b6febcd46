package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

func startDispatcher(t *testing.T, size int) *Dispatcher {
	t.Helper()
	d := NewDispatcher(size)
	if err := d.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDispatcherRunsInOrder(t *testing.T) {
	d := startDispatcher(t, 16)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		_, err := d.Submit("test", func(context.Context) (any, error) {
			return i, nil
		}, func(job domain.Job) {
			defer wg.Done()
			mu.Lock()
			order = append(order, job.Result.(int))
			mu.Unlock()
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}

	for i, v := range order {
		if v != i {
			t.Fatalf("callbacks out of order: %v", order)
		}
	}
	if len(order) != 10 {
		t.Errorf("got %d callbacks, want 10", len(order))
	}
}

func TestDispatcherJobStatus(t *testing.T) {
	d := startDispatcher(t, 4)

	tests := []struct {
		name      string
		fn        ports.JobFunc
		wantState domain.JobState
		wantErr   string
	}{
		{"success", func(context.Context) (any, error) { return "ok", nil }, domain.JobDone, ""},
		{"failure", func(context.Context) (any, error) { return nil, errors.New("boom") }, domain.JobFailed, "boom"},
		{"panic", func(context.Context) (any, error) { panic("bad slot") }, domain.JobFailed, "job panicked: bad slot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan domain.Job, 1)
			job, err := d.Submit(tt.name, tt.fn, func(j domain.Job) { done <- j })
			if err != nil {
				t.Fatal(err)
			}
			if job.State != domain.JobQueued || job.ID == "" {
				t.Errorf("submitted job = %+v", job)
			}

			select {
			case finished := <-done:
				if finished.State != tt.wantState || finished.Error != tt.wantErr || !finished.Terminal() {
					t.Errorf("finished job = %+v", finished)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("job did not finish")
			}

			polled, ok := d.Get(job.ID)
			if !ok || polled.State != tt.wantState || polled.Finished == nil {
				t.Errorf("polled job = %+v, %v", polled, ok)
			}
		})
	}

	if _, ok := d.Get("missing"); ok {
		t.Error("Get of unknown id reported a job")
	}
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestDispatcherQueueFullAndStopped(t *testing.T) {
	d := startDispatcher(t, 1)

	started := make(chan struct{})
	gate := make(chan struct{})
	block := func(context.Context) (any, error) {
		close(started)
		<-gate
		return nil, nil
	}
	noop := func(context.Context) (any, error) { return nil, nil }

	if _, err := d.Submit("block", block, nil); err != nil {
		t.Fatal(err)
	}
	<-started
	queued, err := d.Submit("queued", noop, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Submit("overflow", noop, nil); !errors.Is(err, domain.ErrQueueFull) {
		t.Errorf("overflow: got %v, want ErrQueueFull", err)
	}

	close(gate)
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}
	if job, _ := d.Get(queued.ID); job.State != domain.JobDone {
		t.Errorf("queued job not drained on stop: %+v", job)
	}
	if _, err := d.Submit("late", noop, nil); !errors.Is(err, domain.ErrDispatcherStopped) {
		t.Errorf("after stop: got %v", err)
	}
	if err := d.Stop(); err == nil {
		t.Error("second Stop should fail")
	}
}
