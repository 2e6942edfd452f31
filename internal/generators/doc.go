// Package generators hosts the two content-generation strategies and the
// lexical safety filter they share.
//
// Exactly two strategies exist: the deterministic rule-based generator
// (subpackage rulebased) and the model-backed generator (subpackage llm),
// which falls back to the rule-based one when the model's answer cannot
// be decoded as structured output.
package generators
