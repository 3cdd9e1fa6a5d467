package cmd

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/viant/x"
	"go.uber.org/zap"

	"github.com/viant/beanutil/config"
	"github.com/viant/beanutil/parser"
	"github.com/viant/beanutil/property"
)

var (
	cfgPath string
	verbose bool

	svcOnce sync.Once
	svcInst *service
	svcErr  error
)

// service bundles the components shared by sub-commands within one CLI invocation.
type service struct {
	config   *config.Config
	logger   *zap.Logger
	accessor *property.Accessor
	parser   *parser.Parser
	registry *x.Registry
	// aliases maps reflect.Type.String() forms to registered types
	aliases map[string]*x.Type
}

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed.
func setConfigPath(p string) { cfgPath = p }

func setVerbose(v bool) { verbose = v }

// serviceSingleton initialises the shared service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*service, error) {
	svcOnce.Do(func() {
		cfg := config.Default()
		if cfgPath != "" {
			if cfg, svcErr = config.Load(context.Background(), cfgPath); svcErr != nil {
				return
			}
		}
		svcInst, svcErr = newService(cfg, verbose || cfg.Verbose)
	})
	return svcInst, svcErr
}

func newService(cfg *config.Config, debug bool) (*service, error) {
	logger := zap.NewNop()
	if debug {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}
	ret := &service{
		config:   cfg,
		logger:   logger,
		accessor: property.New(cfg.AccessorOptions(logger)...),
		parser:   parser.New(cfg.ParserOptions(logger)...),
		registry: x.NewRegistry(),
		aliases:  map[string]*x.Type{},
	}
	parser.RegisterFunc(ret.parser, splitList)
	for _, t := range ret.parser.Types() {
		ret.registerType(t)
	}
	logger.Debug("service initialised", zap.Int("types", len(ret.aliases)), zap.String("config", cfgPath))
	return ret, nil
}

func (s *service) registerType(t reflect.Type) {
	xType := x.NewType(t)
	if t.Name() != "" {
		s.registry.Register(xType)
	}
	s.aliases[t.String()] = xType
}

// lookupType resolves a type by its short form (int64, uuid.UUID, *big.Int)
// or by its registry key (github.com/google/uuid.UUID).
func (s *service) lookupType(name string) (reflect.Type, error) {
	if xType, ok := s.aliases[name]; ok {
		return xType.Type, nil
	}
	if xType := s.registry.Lookup(name); xType != nil {
		return xType.Type, nil
	}
	if elem, ok := strings.CutPrefix(name, "*"); ok {
		t, err := s.lookupType(elem)
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(t), nil
	}
	return nil, fmt.Errorf("unknown type %q, see the types command", name)
}

func (s *service) typeNames() []string {
	names := make([]string, 0, len(s.aliases))
	for name := range s.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// splitList parses comma separated lists such as the tags config property
func splitList(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	items := strings.Split(text, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items, nil
}
