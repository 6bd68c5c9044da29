package models

import "time"

// PromoCode 优惠码（收银台输入兑换，全局有效）
type PromoCode struct {
	ID                uint       `json:"id"`                  // 主键
	Code              string     `json:"code"`                // 优惠码（不区分大小写，统一大写存储）
	DiscountType      string     `json:"discount_type"`       // 折扣类型（percentage/fixed）
	DiscountValue     Money      `json:"discount_value"`      // 折扣数值（百分比或固定金额）
	MaxDiscountAmount Money      `json:"max_discount_amount"` // 最大优惠金额（仅百分比生效，0 表示不限制）
	MinSpend          Money      `json:"min_spend"`           // 最低消费门槛
	StartDate         *time.Time `json:"start_date"`          // 生效日期（含当天）
	EndDate           *time.Time `json:"end_date"`            // 失效日期（含当天全天）
	UsageLimit        int        `json:"usage_limit"`         // 总使用上限（0 表示不限制）
	UsageCount        int        `json:"usage_count"`         // 已使用次数（由持久层在兑换成功后递增，此处只读）
	IsActive          bool       `json:"is_active"`           // 是否启用
}
