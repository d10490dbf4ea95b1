// Package config defines the idlgen command line, which doubles as the
// schema of its configuration files.
package config

import (
	"github.com/Alia5/idlgen/internal/cmd"
	"github.com/Alia5/idlgen/internal/log"
)

type CLI struct {
	Config string     `help:"Configuration file (json, yaml or toml); flags and env override it" type:"path" env:"IDLGEN_CONFIG"`
	Log    log.Config `embed:"" prefix:"log-"`

	Generate  cmd.Generate      `cmd:"" help:"Render a definition document into source files"`
	Watch     cmd.Watch         `cmd:"" help:"Render a definition document and re-render it on every change"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
