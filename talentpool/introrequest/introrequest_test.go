package introrequest_test

import (
	"testing"

	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    introrequest.Status
		to      introrequest.Status
		allowed bool
	}{
		{"pending to accepted", introrequest.StatusPending, introrequest.StatusAccepted, true},
		{"pending to rejected", introrequest.StatusPending, introrequest.StatusRejected, true},
		{"pending to cancelled", introrequest.StatusPending, introrequest.StatusCancelled, true},
		{"accepted is terminal", introrequest.StatusAccepted, introrequest.StatusCancelled, false},
		{"rejected is terminal", introrequest.StatusRejected, introrequest.StatusPending, false},
		{"cancelled is terminal", introrequest.StatusCancelled, introrequest.StatusPending, false},
		{"no self transition", introrequest.StatusPending, introrequest.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &introrequest.IntroRequest{Status: tt.from}
			if got := r.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	r := &introrequest.IntroRequest{Status: introrequest.StatusAccepted}
	if err := r.UpdateStatus(introrequest.StatusCancelled); err == nil {
		t.Fatal("expected error for transition out of a terminal state")
	}
	if r.Status != introrequest.StatusAccepted {
		t.Errorf("Status = %s, want unchanged ACCEPTED", r.Status)
	}
}

func TestUpdateStatusStampsChangeTime(t *testing.T) {
	r := &introrequest.IntroRequest{Status: introrequest.StatusPending}
	if err := r.UpdateStatus(introrequest.StatusAccepted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if r.StatusChangedAt == nil {
		t.Error("StatusChangedAt should be set after a transition")
	}
}

func TestCancelOnlyFromPending(t *testing.T) {
	pending := &introrequest.IntroRequest{Status: introrequest.StatusPending}
	if err := pending.Cancel(); err != nil {
		t.Fatalf("Cancel from pending: %v", err)
	}
	if pending.Status != introrequest.StatusCancelled {
		t.Errorf("Status = %s, want CANCELLED", pending.Status)
	}

	for _, status := range []introrequest.Status{
		introrequest.StatusAccepted,
		introrequest.StatusRejected,
		introrequest.StatusCancelled,
	} {
		r := &introrequest.IntroRequest{Status: status}
		if err := r.Cancel(); err == nil {
			t.Errorf("Cancel from %s should fail", status)
		}
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		status introrequest.Status
		active bool
	}{
		{introrequest.StatusPending, true},
		{introrequest.StatusAccepted, true},
		{introrequest.StatusRejected, true},
		{introrequest.StatusCancelled, false},
	}

	for _, tt := range tests {
		r := &introrequest.IntroRequest{Status: tt.status}
		if got := r.IsActive(); got != tt.active {
			t.Errorf("IsActive(%s) = %v, want %v", tt.status, got, tt.active)
		}
	}
}
