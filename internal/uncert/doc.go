// Package uncert provides scalar values tagged with 1-sigma uncertainties
// and arithmetic that propagates those uncertainties automatically.
//
// All propagation is first order and assumes independent inputs. An
// uncertainty is never dropped by any operation: combining an exact value
// with an uncertain one yields an uncertain result.
//
//	g := uncert.New(6.6743e-11, 1.5e-15)
//	m := uncert.New(1.989e30, 1e26)
//	f := g.Mul(m) // uncertainty carried through
package uncert
