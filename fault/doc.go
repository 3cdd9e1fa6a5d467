// Package fault defines the error taxonomy shared by the property and parser
// packages. Caller mistakes (nil input, malformed values, unknown properties)
// wrap ErrInvalidArgument so they can be told apart with errors.Is.
package fault
