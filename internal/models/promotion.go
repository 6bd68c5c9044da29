package models

import "time"

// Promotion 促销活动（无码折扣规则，按门店条件自动生效）
type Promotion struct {
	ID          uint           `json:"id"`            // 主键
	Name        string         `json:"name"`          // 名称
	Status      string         `json:"status"`        // 状态（active/inactive）
	Type        string         `json:"type"`          // 类型（percentage/fixed_amount/bogo/free_item）
	Value       Money          `json:"value"`         // 数值（百分比或固定金额）
	MaxDiscount Money          `json:"max_discount"`  // 最大优惠金额（仅百分比生效，0 表示不限制）
	MinPurchase Money          `json:"min_purchase"`  // 最低消费门槛
	StartDate   time.Time      `json:"start_date"`    // 生效日期
	EndDate     time.Time      `json:"end_date"`      // 失效日期（含当天全天）
	DaysOfWeek  []time.Weekday `json:"days_of_week"`  // 生效星期（0=周日；空表示每天）
	StartTime   string         `json:"start_time"`    // 每日开始时段（HH:MM，24 小时制）
	EndTime     string         `json:"end_time"`      // 每日结束时段（HH:MM；早于开始时段表示跨夜）
	UsageLimit  int            `json:"usage_limit"`   // 总使用上限（0 表示不限制）
	UsageCount  int            `json:"usage_count"`   // 已使用次数（由持久层递增，此处只读）
}
