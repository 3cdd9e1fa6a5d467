// Package config defines the YAML/JSON configuration model of the beanutil
// tooling as well as helper functions to load, validate and turn it into
// property and parser options.
package config
