package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLabelThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "LOW"}, {24, "LOW"},
		{25, "MEDIUM"}, {44, "MEDIUM"},
		{45, "HIGH"}, {69, "HIGH"},
		{70, "CRITICAL"}, {100, "CRITICAL"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RiskLabel(tc.score), "score=%d", tc.score)
	}
}

func TestRiskColorMatchesLabelTier(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{10, "#00CC66"},
		{30, "#00C0F0"},
		{50, "#FFA500"},
		{85, "#FF4B4B"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RiskColor(tc.score), "score=%d", tc.score)
	}
}
