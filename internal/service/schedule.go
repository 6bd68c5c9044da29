package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/kedai-next/internal/constants"
	"github.com/kedai-next/internal/models"
)

// CheckSchedule 校验促销活动的时间条件（日期范围、生效星期、每日时段）
// 按顺序检查，首个失败即返回，保证提示信息可复现
func CheckSchedule(now time.Time, promotion *models.Promotion) models.ValidationResult {
	if now.Before(promotion.StartDate) {
		return models.Reject(fmt.Sprintf("Promosi bermula pada %s", promotion.StartDate.Format("02/01/2006")))
	}
	if now.After(endOfDay(promotion.EndDate)) {
		return models.Reject("Promosi telah tamat tempoh")
	}

	if len(promotion.DaysOfWeek) > 0 && !containsWeekday(promotion.DaysOfWeek, now.Weekday()) {
		return models.Reject(fmt.Sprintf("Promosi hanya sah pada: %s", weekdayLabels(promotion.DaysOfWeek)))
	}

	if promotion.StartTime != "" && promotion.EndTime != "" {
		currentTime := now.Format("15:04")
		if promotion.StartTime > promotion.EndTime {
			// 跨夜时段（例如 22:00 - 02:00）：当前时间 >= 开始 或 <= 结束 均有效
			if currentTime < promotion.StartTime && currentTime > promotion.EndTime {
				return models.Reject(fmt.Sprintf("Promosi hanya sah dari %s hingga %s", promotion.StartTime, promotion.EndTime))
			}
		} else {
			if currentTime < promotion.StartTime || currentTime > promotion.EndTime {
				return models.Reject(fmt.Sprintf("Promosi hanya sah dari %s hingga %s", promotion.StartTime, promotion.EndTime))
			}
		}
	}

	return models.Pass()
}

// endOfDay 返回所在日期的最后一刻（23:59:59.999）
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func containsWeekday(days []time.Weekday, day time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func weekdayLabels(days []time.Weekday) string {
	labels := make([]string, 0, len(days))
	for _, d := range days {
		if d < 0 || int(d) >= len(constants.WeekdayNames) {
			continue
		}
		labels = append(labels, constants.WeekdayNames[d])
	}
	return strings.Join(labels, ", ")
}
