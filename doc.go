// Package equation implements a unit-aware arithmetic expression engine.
//
// An expression is parsed once into a flat reverse-Polish token array
// and then evaluated any number of times against changing variable
// values, so the string processing cost is paid once and each
// evaluation is a tight loop. Evaluation carries SI dimensions along
// with values: "3.1 V / 1 A" evaluates to 3.1 with unit Ohm (or
// "kg m2 /A2 s3" without the DerivedUnits option), and
// "100 degC # degF" converts between affine temperature scales, where
// "# unit" asks for the answer in a particular unit.
//
// Variables are supplied positionally. Parse resolves each name in the
// caller's list to an index, and Eval reads (and, with AllowAssign,
// writes) the value slice at those indices.
package equation
