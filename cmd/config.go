package cmd

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/viant/beanutil/config"
)

// ConfigCmd prints the effective configuration, optionally with overrides
// addressed by serialized property name (e.g. -s timeLayout=2006-01-02).
// The output property of the configuration selects the format unless -o is given.
type ConfigCmd struct {
	Set    []string `short:"s" long:"set" description:"override as name=value, repeatable"`
	Format string   `short:"o" long:"output" description:"output format, overrides the output property" choice:"json" choice:"yaml"`
}

func (c *ConfigCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	return c.print(svc, os.Stdout)
}

func (c *ConfigCmd) print(svc *service, w io.Writer) error {
	cfg := *svc.config
	for _, assignment := range c.Set {
		if err := svc.override(&cfg, assignment); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format := cfg.Output
	if c.Format != "" {
		format = c.Format
	}
	return write(w, format, &cfg)
}

// override applies name=value to cfg: the textual value is parsed into the
// property type and then assigned through the property accessor.
func (s *service) override(cfg *config.Config, assignment string) error {
	name, text, ok := strings.Cut(assignment, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid override %q, expected name=value", assignment)
	}
	prop, err := s.accessor.Lookup(reflect.TypeOf(cfg), name)
	if err != nil {
		return err
	}
	value, err := s.parser.Parse(text, prop.Type)
	if err != nil {
		return fmt.Errorf("override %q: %w", name, err)
	}
	if err := s.accessor.Set(cfg, name, value); err != nil {
		return err
	}
	s.logger.Debug("config override", zap.String("name", name), zap.Stringer("kind", prop.Kind))
	return nil
}
