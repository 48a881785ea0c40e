// Package geometry implements the curve model for the four supported
// families (P1, Elliptic, Hyperelliptic, PlaneCurve), closed-form sheaf
// cohomology for line bundles on them, and the Riemann-Roch and Serre
// duality consistency checks.
//
// All arithmetic is exact: genus and canonical degree are integer
// formulas, elliptic smoothness is an integer discriminant, and
// hyperelliptic smoothness is a squarefreeness test over the rationals
// via big.Rat polynomial gcd. Nothing in this package is numerical.
//
// References:
//   - P1 cohomology: Stacks Project tag 01PZ.
//   - Elliptic discriminant: Silverman, The Arithmetic of Elliptic
//     Curves (GTM 106).
//   - Hyperelliptic genus: Stacks Project tag 0A1M.
//   - Plane curve genus: Stacks Project tag 01R5.
//   - Riemann-Roch, Serre duality: Hartshorne (GTM 52) IV.1.
package geometry
