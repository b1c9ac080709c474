package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualTax_SlabBoundaries(t *testing.T) {
	cases := []struct {
		name        string
		annualGross int64
		want        int64
	}{
		{"zero income", 0, 0},
		{"negative income", -100, 0},
		{"inside first slab", 10_000_000, 0},
		{"exactly first boundary stays in lower slab", 40_000_000, 0},
		{"just above first boundary", 40_000_100, 5},
		{"exactly second boundary", 80_000_000, 2_000_000},
		{"exactly third boundary", 120_000_000, 6_000_000},
		{"exactly fourth boundary", 160_000_000, 12_000_000},
		{"exactly fifth boundary", 200_000_000, 20_000_000},
		{"exactly sixth boundary", 240_000_000, 30_000_000},
		{"into open top slab", 280_000_000, 42_000_000},
		{"deep in top slab", 400_000_000, 78_000_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnnualTax(tc.annualGross))
		})
	}
}

func TestMonthlyTax_TruncatesTowardZero(t *testing.T) {
	// annual 78.000.000: slab pertama bebas pajak, sisa 38.000.000 kena 5%
	assert.Equal(t, int64(1_900_000), AnnualTax(78_000_000))
	assert.Equal(t, int64(158_333), MonthlyTax(78_000_000))

	// pajak tahunan habis dibagi 12
	assert.Equal(t, int64(500_000), MonthlyTax(120_000_000))
}

func TestPFAmount(t *testing.T) {
	assert.Equal(t, int64(600_000), pfAmount(5_000_000, 1200))
	assert.Equal(t, int64(0), pfAmount(0, 1200))
	assert.Equal(t, int64(50_000), pfAmount(5_000_000, 100))
}

func TestResolvePFRateBps_FallbackOrder(t *testing.T) {
	salaryRate := int64(1000)
	policyRate := int64(800)

	assert.Equal(t, int64(1000), resolvePFRateBps(&salaryRate, &policyRate))
	assert.Equal(t, int64(800), resolvePFRateBps(nil, &policyRate))
	assert.Equal(t, int64(1200), resolvePFRateBps(nil, nil))
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "57416.67", FormatMinor(5_741_667))
	assert.Equal(t, "0.05", FormatMinor(5))
	assert.Equal(t, "0.00", FormatMinor(0))
	assert.Equal(t, "-1.50", FormatMinor(-150))
}
