// Package parse converts model-produced text, such as the Text of a
// generation built by the gemini package, into typed Go values. Generated
// output frequently wraps JSON in markdown code fences or arrives slightly
// malformed, so the package strips fences and applies automatic JSON repair
// before falling back to a clear error.
//
// The main entry point is the generic [As] function.
package parse
