package payroll

// Skedul pajak progresif tahunan. Lebar slab 400.000 dalam satuan mayor,
// disimpan di sini dalam satuan terkecil. Nilai tepat di batas slab jatuh
// ke slab bawah (semantik <=).
const taxSlabWidth int64 = 40_000_000

// Tarif per slab dalam persen; slab terakhir terbuka ke atas.
var taxSlabRates = []int64{0, 5, 10, 15, 20, 25, 30}

// AnnualTax menghitung pajak penghasilan tahunan atas gross tahunan dalam
// satuan terkecil, per slab hanya atas porsi penghasilan di dalam slab itu.
// Aritmetika bulat murni, tanpa floating point.
func AnnualTax(annualGross int64) int64 {
	if annualGross <= 0 {
		return 0
	}

	var tax int64
	remaining := annualGross

	for i, rate := range taxSlabRates {
		if remaining <= 0 {
			break
		}

		portion := remaining
		if i < len(taxSlabRates)-1 && portion > taxSlabWidth {
			portion = taxSlabWidth
		}

		tax += portion * rate / 100
		remaining -= portion
	}

	return tax
}

// MonthlyTax adalah TDS bulanan: pajak tahunan dibagi 12, truncate.
func MonthlyTax(annualGross int64) int64 {
	return AnnualTax(annualGross) / 12
}

// pfAmount menghitung kontribusi PF dari basic pay dan tarif basis point.
func pfAmount(basicPay, rateBps int64) int64 {
	return basicPay * rateBps / 10_000
}

// resolvePFRateBps memilih tarif PF dengan urutan fallback eksplisit:
// struktur gaji -> kebijakan -> default 12% (1200 bps).
func resolvePFRateBps(salaryRate *int64, policyRate *int64) int64 {
	if salaryRate != nil {
		return *salaryRate
	}
	if policyRate != nil {
		return *policyRate
	}
	return 1200
}
