// Package cmd implements the sub-commands of the beanutil command-line
// interface.  Each file in this directory holds a single sub-command (parse,
// types, config, fields).  Components shared between commands, such as the
// configuration, property accessor and parser, are created in shared.go.
package cmd
