// Package potential provides one-dimensional potential energy fields.
//
// Each field implements [Field], exposing the potential U(x), the force
// F(x) = -dU/dx, and the curvature d²U/dx². Derivatives are hand-coded
// per field rather than computed numerically or symbolically:
//
//   - [Quartic]: general quartic polynomial; the textbook default
//     U(x) = x⁴ - 4x² + x has two wells and one hump
//   - [DoubleWell]: symmetric bistable well A(x² - B)²
//   - [Harmonic]: spring potential ½k(x - c)²
//   - [Cosine]: pendulum potential mgl(1 - cos x)
//
// Fields also implement [Configurable] for runtime parameter adjustment:
//
//	f := potential.NewDoubleWell()
//	f.SetParam("B", 2.0)
package potential
