// Package parser converts textual values into typed Go values.
//
// Each target type is served by exactly one Rule. Built-in rules cover string,
// Char, bool, the sized integer and float kinds, *big.Int, *inf.Dec,
// uuid.UUID, time.Duration and time.Time. Enums and custom types are added with
// RegisterEnum, RegisterFunc or Register, and types whose pointer implements
// encoding.TextUnmarshaler are handled without registration. Pointer targets
// reuse the rule of their element type.
//
// Malformed input fails with fault.ErrInvalidArgument; a target type without a
// rule fails with ErrUnsupportedType.
package parser
