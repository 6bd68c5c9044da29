package models

// ValidationResult 资格校验结果（失败时携带面向顾客的马来语原因）
type ValidationResult struct {
	Valid  bool   `json:"is_valid"`
	Reason string `json:"reason,omitempty"`
}

// Pass 返回通过的校验结果
func Pass() ValidationResult {
	return ValidationResult{Valid: true}
}

// Reject 返回带原因的失败校验结果
func Reject(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}
