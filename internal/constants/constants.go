package constants

// 优惠码折扣类型常量
const (
	PromoDiscountTypePercentage = "percentage"
	PromoDiscountTypeFixed      = "fixed"
)

// 促销活动状态常量
const (
	PromotionStatusActive   = "active"
	PromotionStatusInactive = "inactive"
)

// 促销活动类型常量
const (
	PromotionTypePercentage  = "percentage"
	PromotionTypeFixedAmount = "fixed_amount"
	PromotionTypeBogo        = "bogo"     // 买一送一（金额折扣由调用方按商品行计算）
	PromotionTypeFreeItem    = "free_item" // 赠品（同上）
)

// 积分兑换默认规则（100 积分 = BND 5，整块兑换）
const (
	DefaultLoyaltyPointsPerBlock = 100
	DefaultLoyaltyValuePerBlock  = 5
)

// DefaultCurrency 默认货币代码
const DefaultCurrency = "BND"

// WeekdayNames 马来语星期名称（下标 0=Ahad 周日）
var WeekdayNames = [7]string{"Ahad", "Isnin", "Selasa", "Rabu", "Khamis", "Jumaat", "Sabtu"}
