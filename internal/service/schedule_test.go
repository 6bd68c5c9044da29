package service

import (
	"testing"
	"time"

	"github.com/kedai-next/internal/constants"
	"github.com/kedai-next/internal/models"
)

func testSchedulePromotion() *models.Promotion {
	return &models.Promotion{
		ID:        1,
		Name:      "Happy Hour",
		Status:    constants.PromotionStatusActive,
		Type:      constants.PromotionTypePercentage,
		Value:     models.NewMoneyFromFloat(10),
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCheckScheduleBeforeStartDate(t *testing.T) {
	promotion := testSchedulePromotion()
	now := time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)

	result := CheckSchedule(now, promotion)
	if result.Valid {
		t.Fatalf("expected invalid before start date")
	}
	if result.Reason != "Promosi bermula pada 01/01/2026" {
		t.Fatalf("unexpected reason: %s", result.Reason)
	}
}

func TestCheckScheduleEndDateInclusive(t *testing.T) {
	promotion := testSchedulePromotion()
	promotion.EndDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	lastMoment := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	if result := CheckSchedule(lastMoment, promotion); !result.Valid {
		t.Fatalf("expected end date to be inclusive, got reason=%s", result.Reason)
	}

	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	result := CheckSchedule(nextDay, promotion)
	if result.Valid {
		t.Fatalf("expected invalid after end of end date")
	}
	if result.Reason != "Promosi telah tamat tempoh" {
		t.Fatalf("unexpected reason: %s", result.Reason)
	}
}

func TestCheckScheduleDayOfWeek(t *testing.T) {
	promotion := testSchedulePromotion()
	promotion.DaysOfWeek = []time.Weekday{time.Monday, time.Tuesday}

	// 2026-03-14 是周六
	saturday := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	result := CheckSchedule(saturday, promotion)
	if result.Valid {
		t.Fatalf("expected invalid on saturday")
	}
	if result.Reason != "Promosi hanya sah pada: Isnin, Selasa" {
		t.Fatalf("unexpected reason: %s", result.Reason)
	}

	monday := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	if result := CheckSchedule(monday, promotion); !result.Valid {
		t.Fatalf("expected valid on monday, got reason=%s", result.Reason)
	}
}

func TestCheckScheduleNormalWindow(t *testing.T) {
	promotion := testSchedulePromotion()
	promotion.StartTime = "09:00"
	promotion.EndTime = "17:00"

	cases := []struct {
		hour, minute int
		valid        bool
	}{
		{8, 59, false},
		{9, 0, true},
		{12, 30, true},
		{17, 0, true},
		{17, 1, false},
	}
	for _, c := range cases {
		now := time.Date(2026, 3, 14, c.hour, c.minute, 0, 0, time.UTC)
		result := CheckSchedule(now, promotion)
		if result.Valid != c.valid {
			t.Fatalf("at %02d:%02d expected valid=%v, got valid=%v reason=%s", c.hour, c.minute, c.valid, result.Valid, result.Reason)
		}
	}
}

func TestCheckScheduleOvernightWindow(t *testing.T) {
	promotion := testSchedulePromotion()
	promotion.StartTime = "22:00"
	promotion.EndTime = "02:00"

	cases := []struct {
		hour, minute int
		valid        bool
	}{
		{21, 59, false},
		{22, 0, true},
		{23, 30, true},
		{0, 30, true},
		{1, 59, true},
		{2, 0, true},
		{2, 1, false},
		{12, 0, false},
	}
	for _, c := range cases {
		now := time.Date(2026, 3, 14, c.hour, c.minute, 0, 0, time.UTC)
		result := CheckSchedule(now, promotion)
		if result.Valid != c.valid {
			t.Fatalf("at %02d:%02d expected valid=%v, got valid=%v reason=%s", c.hour, c.minute, c.valid, result.Valid, result.Reason)
		}
	}

	invalid := CheckSchedule(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), promotion)
	if invalid.Reason != "Promosi hanya sah dari 22:00 hingga 02:00" {
		t.Fatalf("unexpected reason: %s", invalid.Reason)
	}
}
