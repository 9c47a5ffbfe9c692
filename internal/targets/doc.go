// Package targets provides 2D log-density surfaces used as targets for
// sampling animations and gradient-based explorers.
//
// Each target implements [Target]:
//
//   - [MultNorm]: correlated bivariate normal
//   - [BimodMultNorm]: log-sum-exp mixture of two bivariate normals
//   - [Donut]: normal density of the Euclidean radius
//   - [DonutMin]: donut with a filled-in centre term
//   - [Rosenbrock]: negated banana function
//
// The shared grid and surface cache live in [Base], which concrete targets
// embed. A target is fully initialised by its constructor and never mutated
// afterwards; consumers only query it.
//
// # Gradients
//
// [Base.Grad] is a central finite difference with step [GradStep]. Targets
// with a closed-form derivative override Grad; the two agree to within
// finite-difference tolerance.
//
//	t, _ := targets.NewDonut(4, 2, 0.4, "Viridis")
//	g := t.Grad([]float64{1, 1})
package targets
