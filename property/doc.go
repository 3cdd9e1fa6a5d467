// Package property reads and writes named properties of arbitrary struct
// values.
//
// A property name is resolved, in order, to an exported getter/setter method
// pair (GetName/Name/IsName and SetName), to a field whose serialization tag
// names it, or to a field with that declared name. Fields promoted from
// embedded structs take part in the lookup; the most derived declaration wins.
//
// A getter takes no argument and returns a value, optionally followed by an
// error; methods returning only an error (Close, Validate) are never getters.
// The bare Name form is skipped when a field carries the name as its tag.
// A setter whose argument type differs from the getter result is ignored and
// writes go to the backing field.
//
// Names are camel-cased with strcase, so "id" becomes Id. Declared names and
// method names are then matched case-insensitively as a last resort, which
// reaches initialisms such as ID or GetUserID.
//
// Unexported fields are only reachable through an Accessor created with
// WithUnexported(true); otherwise such access fails with ErrAccessDenied.
package property
