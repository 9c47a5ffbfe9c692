// Package distr provides closed-form log-densities of the normal
// distributions the targets are built from.
//
//   - [Norm]: univariate normal
//   - [Norm2D]: bivariate normal with a full 2×2 covariance
//
// Both are immutable after construction and evaluate in the log domain,
// so points far from the mode do not underflow.
package distr
