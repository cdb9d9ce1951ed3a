package config

import "time"

// Catalog definition catalog_service YAML structure
type Catalog struct {
	Port string `mapstructure:"port"`
	IP   string `mapstructure:"ip"`

	// SummaryDelay 模擬 AI 摘要的處理延遲
	SummaryDelay time.Duration `mapstructure:"summary_delay"`

	AIModel string `mapstructure:"ai_model"`
}
