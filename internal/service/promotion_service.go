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

// PromotionService 促销活动规则服务
type PromotionService struct {
	currency string
}

// NewPromotionService 创建促销活动规则服务
func NewPromotionService(currency string) *PromotionService {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return &PromotionService{currency: currency}
}

// Validate 校验促销活动当前是否可用（状态、时间条件、消费门槛、使用配额）
// 配额检查读取的是调用方提供的快照，兑换提交时由持久层做原子递增兜底
func (s *PromotionService) Validate(now time.Time, promotion *models.Promotion, subtotal models.Money) models.ValidationResult {
	if promotion == nil || promotion.Status != constants.PromotionStatusActive {
		return models.Reject("Promosi tidak aktif")
	}

	if result := CheckSchedule(now, promotion); !result.Valid {
		return result
	}

	if promotion.MinPurchase.Decimal.GreaterThan(decimal.Zero) && subtotal.Decimal.LessThan(promotion.MinPurchase.Decimal) {
		return models.Reject(fmt.Sprintf("Minimum pembelian %s %s", s.currency, promotion.MinPurchase.String()))
	}

	if promotion.UsageLimit > 0 && promotion.UsageCount >= promotion.UsageLimit {
		return models.Reject("Kuota promosi telah habis")
	}

	return models.Pass()
}

// Discount 计算促销活动折扣金额（需先通过 Validate；结果钳制在 [0, subtotal]）
func (s *PromotionService) Discount(promotion *models.Promotion, subtotal models.Money) models.Money {
	if promotion == nil {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}

	discount := decimal.Zero
	switch strings.ToLower(strings.TrimSpace(promotion.Type)) {
	case constants.PromotionTypePercentage:
		discount = subtotal.Decimal.Mul(promotion.Value.Decimal).Div(decimal.NewFromInt(100))
		if promotion.MaxDiscount.Decimal.GreaterThan(decimal.Zero) && discount.GreaterThan(promotion.MaxDiscount.Decimal) {
			discount = promotion.MaxDiscount.Decimal
		}
	case constants.PromotionTypeFixedAmount:
		discount = promotion.Value.Decimal
	case constants.PromotionTypeBogo, constants.PromotionTypeFreeItem:
		// 商品行级折扣由调用方计算，此处不产生金额折扣
		discount = decimal.Zero
	}

	return models.NewMoneyFromDecimal(clampDiscount(discount, subtotal.Decimal))
}

// ApplyPromotion 校验并计算促销活动折扣，校验失败返回 0
func (s *PromotionService) ApplyPromotion(now time.Time, promotion *models.Promotion, subtotal models.Money) models.Money {
	result := s.Validate(now, promotion, subtotal)
	if !result.Valid {
		logger.Debugw("promotion_rejected",
			"reason", result.Reason,
			"subtotal", subtotal.String(),
		)
		return models.NewMoneyFromDecimal(decimal.Zero)
	}

	discount := s.Discount(promotion, subtotal)
	logger.Debugw("promotion_applied",
		"promotion_id", promotion.ID,
		"type", promotion.Type,
		"subtotal", subtotal.String(),
		"discount", discount.String(),
	)
	return discount
}

// ValidPromotions 过滤出当前可用的促销活动
func (s *PromotionService) ValidPromotions(now time.Time, promotions []models.Promotion, subtotal models.Money) []models.Promotion {
	valid := make([]models.Promotion, 0, len(promotions))
	for i := range promotions {
		if s.Validate(now, &promotions[i], subtotal).Valid {
			valid = append(valid, promotions[i])
		}
	}
	return valid
}

// clampDiscount 将折扣金额钳制在 [0, subtotal]，防止负折扣或超出订单金额
func clampDiscount(discount, subtotal decimal.Decimal) decimal.Decimal {
	if discount.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}
