package service

import (
	"errors"

	"github.com/kedai-next/internal/config"
	"github.com/kedai-next/internal/models"

	"github.com/shopspring/decimal"
)

// ErrLoyaltyRateInvalid 积分兑换规则配置无效（兑换块积分数或现金价值非正数）
var ErrLoyaltyRateInvalid = errors.New("loyalty conversion rate invalid")

// LoyaltyService 会员积分换算服务（无状态纯计算，可安全并发调用）
type LoyaltyService struct {
	pointsPerBlock int64
	valuePerBlock  decimal.Decimal
}

// NewLoyaltyService 按配置创建积分换算服务
func NewLoyaltyService(cfg config.LoyaltyConfig) (*LoyaltyService, error) {
	if cfg.PointsPerBlock <= 0 || cfg.ValuePerBlock <= 0 {
		return nil, ErrLoyaltyRateInvalid
	}
	return &LoyaltyService{
		pointsPerBlock: cfg.PointsPerBlock,
		valuePerBlock:  decimal.NewFromFloat(cfg.ValuePerBlock),
	}, nil
}

// PointsEarned 按实付总额计算获得积分（每 1 元 1 分，向下取整，绝不进位）
func (s *LoyaltyService) PointsEarned(finalTotal models.Money) int64 {
	return finalTotal.Decimal.Floor().IntPart()
}

// RedemptionValue 计算积分可兑换的现金价值（整块兑换，不足一块返回 0）
func (s *LoyaltyService) RedemptionValue(points int64) models.Money {
	if points < s.pointsPerBlock {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}
	blocks := points / s.pointsPerBlock
	return models.NewMoneyFromDecimal(s.valuePerBlock.Mul(decimal.NewFromInt(blocks)))
}

// RedeemablePoints 返回本次兑换应扣减的积分数（兑换块大小的整数倍，零头保留在余额中）
func (s *LoyaltyService) RedeemablePoints(points int64) int64 {
	if points < s.pointsPerBlock {
		return 0
	}
	return (points / s.pointsPerBlock) * s.pointsPerBlock
}
