package config

import (
	"fmt"
	"strings"

	"github.com/kedai-next/internal/constants"
	"github.com/kedai-next/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Pricing PricingConfig `mapstructure:"pricing"`
	Loyalty LoyaltyConfig `mapstructure:"loyalty"`
	Log     LogConfig     `mapstructure:"log"`
}

// PricingConfig 计价配置
type PricingConfig struct {
	Currency string `mapstructure:"currency"` // 校验提示中使用的货币代码
}

// LoyaltyConfig 积分兑换配置
type LoyaltyConfig struct {
	PointsPerBlock int64   `mapstructure:"points_per_block"` // 一个兑换块所需积分
	ValuePerBlock  float64 `mapstructure:"value_per_block"`  // 一个兑换块的现金价值
}

// LogConfig 日志配置
type LogConfig struct {
	Mode       string `mapstructure:"mode"` // debug / release
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// Load 加载配置（配置文件缺失时回退到环境变量与默认值）
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")     // 从当前目录查找
	viper.AddConfigPath("./")    // 备用路径
	viper.AddConfigPath("./etc") // etc 文件夹

	// 默认配置
	viper.SetDefault("pricing.currency", constants.DefaultCurrency)
	viper.SetDefault("loyalty.points_per_block", constants.DefaultLoyaltyPointsPerBlock)
	viper.SetDefault("loyalty.value_per_block", constants.DefaultLoyaltyValuePerBlock)
	viper.SetDefault("log.mode", "release")
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.filename", "pricing.log")
	viper.SetDefault("log.max_size_mb", 100)
	viper.SetDefault("log.max_backups", 7)
	viper.SetDefault("log.max_age_days", 30)
	viper.SetDefault("log.compress", true)

	// 环境变量支持
	viper.AutomaticEnv()                                   // 自动读取环境变量
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // 将 . 替换为 _ (例如 pricing.currency -> PRICING_CURRENCY)

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}

	return &cfg
}
