package scheduler

import (
	"errors"
	"testing"

	"github.com/go-co-op/gocron/v2"
)

func TestLifecycleAndJobValidation(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	// Init is idempotent
	if err := Init(); err != nil {
		t.Fatalf("Repeat Init failed: %v", err)
	}

	if _, err := AddJob("", "*/15 * * * *", func() {}); !errors.Is(err, ErrEmptyJobName) {
		t.Errorf("Empty job name: expected ErrEmptyJobName, got %v", err)
	}
	if _, err := AddJob("nightly_sweep", "  ", func() {}); !errors.Is(err, ErrEmptyCronExpr) {
		t.Errorf("Blank cron expression: expected ErrEmptyCronExpr, got %v", err)
	}

	job, err := AddJob("nightly_sweep", "0 3 * * *", func() {},
		gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		t.Fatalf("AddJob failed: %v", err)
	}
	if job.Name() != "nightly_sweep" {
		t.Errorf("Job name not applied, got %q", job.Name())
	}

	if err := Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	// Stop is idempotent
	if err := Stop(); err != nil {
		t.Fatalf("Repeat Stop failed: %v", err)
	}
}
