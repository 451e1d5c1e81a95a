package main

import (
	"github.com/urfave/cli/v2"
)

const (
	configFlagName   = "config"
	publishFlagName  = "publish"
	yesFlagName      = "yes"
	logLevelFlagName = "log-level"
	logFileFlagName  = "log-file"
)

var (
	configFlag = &cli.StringFlag{
		Name:     configFlagName,
		Aliases:  []string{"t"},
		Usage:    "path to the TOML config with the RAMM's deployment parameters",
		Required: true,
	}
	publishFlag = &cli.StringFlag{
		Name:    publishFlagName,
		Aliases: []string{"p"},
		Usage:   "path to the RAMM Move library to publish, overriding the config",
	}
	yesFlag = &cli.BoolFlag{
		Name:    yesFlagName,
		Aliases: []string{"y"},
		Usage:   "skip the interactive confirmation of the deployment config",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  logLevelFlagName,
		Usage: "log level (trace, debug, info, warn, error)",
		Value: "info",
	}
	logFileFlag = &cli.StringFlag{
		Name:  logFileFlagName,
		Usage: "also write logs to this file, in addition to the terminal",
	}
)

var deployFlags = []cli.Flag{
	configFlag,
	publishFlag,
	yesFlag,
	logLevelFlag,
	logFileFlag,
}
