package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/kedai-next/internal/constants"
	"github.com/kedai-next/internal/logger"
	"github.com/kedai-next/internal/models"

	"github.com/shopspring/decimal"
)

// PromoResult 优惠码校验结果
type PromoResult struct {
	Valid    bool              `json:"is_valid"`
	Discount models.Money      `json:"discount_amount"`
	Reason   string            `json:"reason,omitempty"`
	Promo    *models.PromoCode `json:"promo_code,omitempty"`
}

// PromoService 优惠码服务
type PromoService struct {
	currency string
}

// NewPromoService 创建优惠码服务
func NewPromoService(currency string) *PromoService {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return &PromoService{currency: currency}
}

// NormalizeCode 归一化优惠码（去空格并统一大写），供调用方查询持久层前使用
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Verify 校验优惠码并计算折扣金额
// promo 为 nil 表示调用方未查到该码；与已停用合并为同一提示，避免暴露优惠码是否存在
func (s *PromoService) Verify(now time.Time, promo *models.PromoCode, subtotal models.Money) PromoResult {
	if promo == nil || !promo.IsActive {
		return s.reject(promo, "Kod promo tidak sah atau telah tamat tempoh.")
	}

	if promo.StartDate != nil && now.Before(*promo.StartDate) {
		return s.reject(promo, "Kod promo belum bermula.")
	}
	if promo.EndDate != nil && now.After(endOfDay(*promo.EndDate)) {
		return s.reject(promo, "Kod promo telah tamat.")
	}

	if promo.UsageLimit > 0 && promo.UsageCount >= promo.UsageLimit {
		return s.reject(promo, "Kod promo telah habis ditebus.")
	}

	if subtotal.Decimal.LessThan(promo.MinSpend.Decimal) {
		return s.reject(promo, fmt.Sprintf("Belanja minimum %s %s diperlukan.", s.currency, promo.MinSpend.String()))
	}

	discount := s.calculateDiscount(promo, subtotal)
	logger.Debugw("promo_code_verified",
		"code", promo.Code,
		"subtotal", subtotal.String(),
		"discount", discount.String(),
	)
	return PromoResult{
		Valid:    true,
		Discount: discount,
		Promo:    promo,
	}
}

func (s *PromoService) calculateDiscount(promo *models.PromoCode, subtotal models.Money) models.Money {
	discount := decimal.Zero
	switch strings.ToLower(strings.TrimSpace(promo.DiscountType)) {
	case constants.PromoDiscountTypePercentage:
		discount = subtotal.Decimal.Mul(promo.DiscountValue.Decimal).Div(decimal.NewFromInt(100))
		if promo.MaxDiscountAmount.Decimal.GreaterThan(decimal.Zero) && discount.GreaterThan(promo.MaxDiscountAmount.Decimal) {
			discount = promo.MaxDiscountAmount.Decimal
		}
	default:
		discount = promo.DiscountValue.Decimal
	}

	// 上限配置异常时兜底：折扣不得超过订单小计
	return models.NewMoneyFromDecimal(clampDiscount(discount, subtotal.Decimal))
}

func (s *PromoService) reject(promo *models.PromoCode, reason string) PromoResult {
	code := ""
	if promo != nil {
		code = promo.Code
	}
	logger.Debugw("promo_code_rejected",
		"code", code,
		"reason", reason,
	)
	return PromoResult{
		Discount: models.NewMoneyFromDecimal(decimal.Zero),
		Reason:   reason,
	}
}
