package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-chatmd/internal/yamlutil"
)

// runConfigCommand prints the effective configuration as YAML.
// Render flags are not applied; the output is what a config file
// plus environment produce.
func runConfigCommand(args []string, env *Environment) error {
	var configName string
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&configName, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(env.Stdout) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfigFile(cmp.Or(configName, envCfg.ConfigPath))
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
