package risk

// Risk tier thresholds are a stable public contract: downstream reports
// must reproduce them exactly.

// RiskLabel maps a composite score to its risk tier
func RiskLabel(score int) string {
	switch {
	case score >= 70:
		return "CRITICAL"
	case score >= 45:
		return "HIGH"
	case score >= 25:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// RiskColor maps a composite score to its display color token
func RiskColor(score int) string {
	switch {
	case score >= 70:
		return "#FF4B4B"
	case score >= 45:
		return "#FFA500"
	case score >= 25:
		return "#00C0F0"
	default:
		return "#00CC66"
	}
}
