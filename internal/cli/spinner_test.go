package cli

import (
	"context"
	"testing"
	"time"

	"github.com/vibelux/toolkit/pkg/errors"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner(context.Background(), "Testing...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	// Stop must return promptly and leave the line cleared.
	s.Stop()
}

func TestSpinnerWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "Testing with context...")
	s.Start()

	cancel()

	// Give the goroutine time to notice cancellation
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, "Testing with timeout...")
	s.Start()

	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newSpinner(context.Background(), "Testing success...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Done!")
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner(context.Background(), "Testing error...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Failed!")
}

func TestRenderWithSpinner(t *testing.T) {
	data, err := renderWithSpinner(context.Background(), "Working", func() ([]byte, error) {
		time.Sleep(50 * time.Millisecond)
		return []byte("ok"), nil
	})
	if err != nil {
		t.Fatalf("renderWithSpinner() error = %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("renderWithSpinner() = %q, want %q", data, "ok")
	}
}

func TestRenderWithSpinnerPropagatesError(t *testing.T) {
	want := errors.New(errors.ErrCodeRenderFailed, "boom")
	_, err := renderWithSpinner(context.Background(), "Working", func() ([]byte, error) {
		return nil, want
	})
	if errors.GetCode(err) != errors.ErrCodeRenderFailed {
		t.Errorf("GetCode() = %q, want %q", errors.GetCode(err), errors.ErrCodeRenderFailed)
	}
}

func TestRenderWithSpinnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := renderWithSpinner(ctx, "Working", func() ([]byte, error) {
		return []byte("ignored"), nil
	})
	if err == nil {
		t.Fatal("renderWithSpinner() should fail when the context is already cancelled")
	}
}
