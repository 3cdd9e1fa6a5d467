package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config  string `short:"f" long:"config" description:"configuration YAML/JSON URL"`
	Verbose bool   `short:"V" long:"verbose" description:"log resolution details to stderr"`

	Parse  *ParseCmd  `command:"parse"  description:"Parse values into a named type"`
	Types  *TypesCmd  `command:"types"  description:"List types accepted by parse"`
	Show   *ConfigCmd `command:"config" description:"Print the configuration, with optional overrides"`
	Fields *FieldsCmd `command:"fields" description:"List configuration property descriptors"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "parse":
		o.Parse = &ParseCmd{}
	case "types":
		o.Types = &TypesCmd{}
	case "config":
		o.Show = &ConfigCmd{}
	case "fields":
		o.Fields = &FieldsCmd{}
	}
}
