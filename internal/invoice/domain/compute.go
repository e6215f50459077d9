package domain

// Compute derives the monetary breakdown for one line. It applies no rounding;
// two-decimal formatting is an export concern. It also does not validate:
// callers must guarantee qty > 0, price >= 0 and rate >= 0 or the result is
// undefined.
func Compute(qty, price, rate float64) Breakdown {
	totalBeforeTax := qty * price
	taxAmount := totalBeforeTax * rate / 100
	return Breakdown{
		TotalBeforeTax: totalBeforeTax,
		TaxAmount:      taxAmount,
		TotalAfterTax:  totalBeforeTax + taxAmount,
	}
}
