package timeutil

import (
	"testing"
	"time"
)

func withFrozenClock(t *testing.T, now time.Time) {
	t.Helper()
	orig := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = orig })
}

func TestRoundDuration(t *testing.T) {
	if got := RoundDuration(5); got != 5*time.Minute {
		t.Errorf("RoundDuration(5) = %v, want %v", got, 5*time.Minute)
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	withFrozenClock(t, now)

	tests := []struct {
		name      string
		startedAt time.Time
		budget    time.Duration
		want      time.Duration
	}{
		{
			name:      "Half spent",
			startedAt: now.Add(-1 * time.Minute),
			budget:    2 * time.Minute,
			want:      1 * time.Minute,
		},
		{
			name:      "Just started",
			startedAt: now,
			budget:    5 * time.Minute,
			want:      5 * time.Minute,
		},
		{
			name:      "Overspent clamps to zero",
			startedAt: now.Add(-10 * time.Minute),
			budget:    2 * time.Minute,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.startedAt, tt.budget); got != tt.want {
				t.Errorf("Remaining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	withFrozenClock(t, now)

	if Expired(now.Add(-30*time.Second), time.Minute) {
		t.Error("Expired() = true for a running round")
	}
	if !Expired(now.Add(-time.Minute), time.Minute) {
		t.Error("Expired() = false at the exact budget boundary")
	}
	if !Expired(now.Add(-2*time.Minute), time.Minute) {
		t.Error("Expired() = false for an overspent round")
	}
}

func TestDaysHoursMinutes(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "Zero",
			d:    0,
			want: "0m",
		},
		{
			name: "Negative",
			d:    -time.Minute,
			want: "0m",
		},
		{
			name: "Minutes only",
			d:    5 * time.Minute,
			want: "5m",
		},
		{
			name: "Sub-minute rounds up",
			d:    30 * time.Second,
			want: "1m",
		},
		{
			name: "Hours and minutes",
			d:    90 * time.Minute,
			want: "1h 30m",
		},
		{
			name: "Days hours minutes",
			d:    25*time.Hour + 5*time.Minute,
			want: "1d 1h 5m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysHoursMinutes(tt.d); got != tt.want {
				t.Errorf("DaysHoursMinutes(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
