package cmd

import (
	"fmt"
	"os"
)

// ParseCmd converts literal values into a named type and prints the result.
type ParseCmd struct {
	Type   string   `short:"t" long:"type" description:"target type, e.g. int64, uuid.UUID, *big.Int" required:"yes"`
	Values []string `short:"v" long:"value" description:"value to parse, repeatable; positional arguments are appended"`
	List   bool     `short:"l" long:"list" description:"always print a list, even for a single value"`
}

func (c *ParseCmd) Execute(args []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	target, err := svc.lookupType(c.Type)
	if err != nil {
		return err
	}
	values := append(append([]string{}, c.Values...), args...)
	if len(values) == 0 {
		return fmt.Errorf("at least one value must be provided via -v/--value or as argument")
	}

	var result interface{}
	if len(values) == 1 && !c.List {
		result, err = svc.parser.Parse(values[0], target)
	} else {
		result, err = svc.parser.ParseAll(values, target)
	}
	if err != nil {
		return err
	}
	output := map[string]interface{}{
		"type":  target.String(),
		"value": render(result),
	}
	return write(os.Stdout, svc.config.Output, output)
}
