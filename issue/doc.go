// Package issue provides the located diagnostics raised by rule checks.
//
// An [Issue] names the rule that raised it, carries a severity and a primary
// [Location], and may point at further secondary locations (for example the
// first definition of a duplicated identifier). Locations are built from
// lexical tokens or tree nodes:
//
//	loc := issue.AtNode("Define a default response for this operation.", responses)
//	is := issue.New("DefaultResponse", issue.SeverityMajor, loc)
//
// Lines are 1-based and offsets are 0-based rune columns. A location without
// a line (see [AtFile]) applies to the whole file.
package issue
