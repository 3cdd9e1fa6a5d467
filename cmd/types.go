package cmd

import (
	"fmt"

	"github.com/viant/beanutil/internal/matcher"
)

// TypesCmd prints every type the parse command accepts.
type TypesCmd struct {
	Args struct {
		Pattern string `positional-arg-name:"pattern" description:"name filter, trailing * matches by prefix"`
	} `positional-args:"yes"`
}

func (c *TypesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, name := range matcher.Filter(c.Args.Pattern, svc.typeNames()) {
		fmt.Println(name)
	}
	return nil
}
