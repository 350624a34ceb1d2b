package datajud

import (
	"testing"
	"time"
)

func TestRetryableStatus(t *testing.T) {
	tests := []struct {
		status int
		expect bool
	}{
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
		{200, false},
		{400, false},
		{401, false},
		{403, false},
		{404, false},
		{501, false},
	}

	for _, tt := range tests {
		if got := RetryableStatus(tt.status); got != tt.expect {
			t.Errorf("RetryableStatus(%d) = %v, want %v", tt.status, got, tt.expect)
		}
	}
}

func TestBackoffDelayGrowsAndCaps(t *testing.T) {
	config := RetryConfig{
		MaxAttempts:     5,
		InitialDelay:    time.Second,
		MaxDelay:        5 * time.Second,
		BackoffMultiple: 2.0,
	}

	if d := backoffDelay(0, config); d != time.Second {
		t.Errorf("attempt 0 delay = %v, want 1s", d)
	}
	if d := backoffDelay(1, config); d != 2*time.Second {
		t.Errorf("attempt 1 delay = %v, want 2s", d)
	}
	if d := backoffDelay(10, config); d != 5*time.Second {
		t.Errorf("attempt 10 delay = %v, want the 5s cap", d)
	}
}
