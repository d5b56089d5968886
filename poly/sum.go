package poly

// SumLinear sums a sequence of polynomials and/or raw numbers in time linear
// in the total number of terms across all inputs, rather than the O(n²)
// that repeated pairwise Add would cost when folding across thousands of
// terms. It is the primitive objective/constraint construction is expected
// to go through when assembling expressions from many symbolic terms:
//
//  1. enumerate every input's terms into (monomial, coefficient) pairs,
//  2. group pairs by monomial,
//  3. sum coefficients within each group,
//  4. prune groups whose summed coefficient is zero,
//  5. assemble the remaining groups into a normalized Polynomial.
//
// No intermediate Θ(n)-sized polynomial is built and merged Θ(n) times: a
// single accumulator map absorbs every input's terms in one pass.
//
// SumLinear([]interface{}{}) is Const(0). A single-element input is that
// element, coerced to a Polynomial.
func SumLinear(xs []interface{}) (Polynomial, error) {
	acc := make(map[string]float64)
	for _, x := range xs {
		p, err := ToPolynomial(x)
		if err != nil {
			return Polynomial{}, err
		}
		for k, c := range p.terms {
			acc[k] += c
		}
	}
	return pruneToPolynomial(acc), nil
}
