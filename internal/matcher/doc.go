// Package matcher implements the name patterns accepted by CLI listings.
package matcher
