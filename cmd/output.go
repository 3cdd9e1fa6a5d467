package cmd

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/viant/beanutil/config"
)

// render turns parsed values into JSON/YAML friendly ones: text marshalers
// and stringers print as their text form, slices element-wise.
func render(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch actual := v.(type) {
	case encoding.TextMarshaler:
		if text, err := actual.MarshalText(); err == nil {
			return string(text)
		}
	case fmt.Stringer:
		return actual.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		ret := make([]interface{}, rv.Len())
		for i := range ret {
			ret[i] = render(rv.Index(i).Interface())
		}
		return ret
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return render(rv.Elem().Interface())
	}
	return v
}

func write(w io.Writer, format string, v interface{}) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
