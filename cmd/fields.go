package cmd

import (
	"fmt"
	"reflect"

	"github.com/viant/beanutil/config"
)

// FieldsCmd prints the property descriptors of the configuration model.
type FieldsCmd struct{}

func (c *FieldsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, field := range svc.accessor.Fields(reflect.TypeOf(config.Config{})) {
		fmt.Printf("%s\t%s\t%v\n", field.SerializedName, field.Name, field.Type)
	}
	return nil
}
