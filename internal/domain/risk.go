package domain

// RiskLevel buckets a debt summary for display
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Risk thresholds applied to a summary
const (
	HighRiskPaymentRatio   = 0.43
	MediumRiskPaymentRatio = 0.36
	MediumRiskPayoffMonths = 120
)

// ClassifyRisk buckets a payment-to-income ratio and a debt-free horizon.
// A horizon of PayoffNever is always high risk.
func ClassifyRisk(paymentToIncomeRatio float64, debtFreeMonths int) RiskLevel {
	switch {
	case paymentToIncomeRatio > HighRiskPaymentRatio, debtFreeMonths == PayoffNever:
		return RiskLevelHigh
	case paymentToIncomeRatio > MediumRiskPaymentRatio, debtFreeMonths > MediumRiskPayoffMonths:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}
