package services

import (
	"testing"
	"time"

	"leasingcrm/internal/models"
)

func TestAddMonthsClamped(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain month",
			start:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "jan 31 clamps to feb 28",
			start:  time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "jan 31 clamps to feb 29 on a leap year",
			start:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "may 31 clamps to june 30",
			start:  time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year rollover",
			start:  time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2027, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "36 month contract",
			start:  time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
			months: 36,
			want:   time.Date(2029, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "negative offset",
			start:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			months: -2,
			want:   time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "negative offset clamps",
			start:  time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: -1,
			want:   time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddMonthsClamped(tc.start, tc.months)
			if !got.Equal(tc.want) {
				t.Fatalf("AddMonthsClamped(%v, %d) = %v, want %v", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestDeriveContractEnd(t *testing.T) {
	delivery := models.NewDate(2026, time.January, 31)

	end := DeriveContractEnd(&delivery, 36)
	if end == nil {
		t.Fatal("expected a contract end date")
	}
	if got, want := end.String(), "2029-01-31"; got != want {
		t.Fatalf("contract end = %s, want %s", got, want)
	}

	if DeriveContractEnd(nil, 36) != nil {
		t.Fatal("nil delivery must derive nil")
	}
	zero := models.Date{}
	if DeriveContractEnd(&zero, 36) != nil {
		t.Fatal("zero delivery must derive nil")
	}
	if DeriveContractEnd(&delivery, 0) != nil {
		t.Fatal("zero duration must derive nil")
	}
}

func TestDeriveContractEndIsStable(t *testing.T) {
	delivery := models.NewDate(2026, time.January, 31)
	first := DeriveContractEnd(&delivery, 1)
	second := DeriveContractEnd(&delivery, 1)
	if first.String() != second.String() {
		t.Fatalf("derivation not stable: %s vs %s", first, second)
	}
	if got, want := first.String(), "2026-02-28"; got != want {
		t.Fatalf("contract end = %s, want %s", got, want)
	}
}

func TestDaysRemaining(t *testing.T) {
	today := time.Date(2026, time.March, 15, 9, 45, 0, 0, time.UTC)

	end := models.NewDate(2026, time.March, 25)
	if got := DaysRemaining(&end, today); got == nil || *got != 10 {
		t.Fatalf("DaysRemaining = %v, want 10", got)
	}

	past := models.NewDate(2026, time.March, 10)
	if got := DaysRemaining(&past, today); got == nil || *got != -5 {
		t.Fatalf("DaysRemaining for an overdue contract = %v, want -5", got)
	}

	same := models.NewDate(2026, time.March, 15)
	if got := DaysRemaining(&same, today); got == nil || *got != 0 {
		t.Fatalf("DaysRemaining on the end day = %v, want 0", got)
	}

	if DaysRemaining(nil, today) != nil {
		t.Fatal("no contract end must report nil, not zero")
	}
}
