// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/attic-labs/kingpin"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/frompq/cmd/frompq/cli"
	"github.com/dolthub/frompq/libraries/frompq/config"
	"github.com/dolthub/frompq/libraries/utils/iohelp"
	"github.com/dolthub/frompq/store/util/profile"
)

const Version = "0.1.0"

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// handler runs a parsed command and returns the process exit code.
type handler func(ctx context.Context, env *cmdEnv) int

// cmdEnv is what every command needs after the global flags have been applied.
type cmdEnv struct {
	cfg    *config.Config
	logger *logrus.Logger
	stdin  io.Reader
}

type globalFlags struct {
	configPath *string
	verbose    *bool
	noColor    *bool
	profile    profile.Flags
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin))
}

func run(ctx context.Context, args []string, stdin io.Reader) int {
	app := kingpin.New("frompq", "Decodes parquet files into json, yaml or text tables.")
	app.HelpFlag.Short('h')
	app.UsageWriter(cli.CliErr)
	app.ErrorWriter(cli.CliErr)

	helped := false
	app.Terminate(func(int) { helped = true })

	gf := globalFlags{
		configPath: app.Flag("config", "yaml config file").String(),
		verbose:    app.Flag("verbose", "log progress to stderr").Short('v').Bool(),
		noColor:    app.Flag("no-color", "disable colored error output").Bool(),
		profile:    profile.RegisterProfileFlags(app),
	}

	handlers := map[string]handler{}
	for _, install := range []func(*kingpin.Application) (*kingpin.CmdClause, handler){
		decodeCommand,
		schemaCommand,
		versionCommand,
	} {
		cmd, h := install(app)
		handlers[cmd.FullCommand()] = h
	}

	input, err := app.Parse(stdinArgs(args))
	if helped {
		return exitOK
	} else if err != nil {
		cli.PrintErrln(err.Error())
		return exitUsage
	}

	h := handlers[strings.Split(input, " ")[0]]
	if h == nil {
		app.Usage(nil)
		return exitUsage
	}

	cli.InitColor(*gf.noColor)

	env, err := newCmdEnv(gf, stdin)
	if err != nil {
		cli.PrintErrln(err.Error())
		return exitUsage
	}

	stopper := profile.MaybeStartProfile(gf.profile)
	defer stopper.Stop()

	return h(ctx, env)
}

// stdinArgs moves a bare "-" behind a "--" terminator. kingpin otherwise
// lexes it as an empty short flag.
func stdinArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	dash := false
	for i, arg := range args {
		if arg == "--" {
			if dash {
				out = append(out, "--", iohelp.StdinPath)
				return append(out, args[i+1:]...)
			}
			return append(out, args[i:]...)
		} else if arg == iohelp.StdinPath && !dash {
			dash = true
			continue
		}

		out = append(out, arg)
	}

	if dash {
		out = append(out, "--", iohelp.StdinPath)
	}

	return out
}

func newCmdEnv(gf globalFlags, stdin io.Reader) (*cmdEnv, error) {
	cfg := config.Default()
	if *gf.configPath != "" {
		var err error
		cfg, err = config.LoadFile(*gf.configPath)
		if err != nil {
			return nil, err
		}
	}

	logger := logrus.New()
	logger.SetOutput(cli.CliErr)
	logger.SetLevel(cfg.LogLevel())
	if *gf.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &cmdEnv{cfg: cfg, logger: logger, stdin: stdin}, nil
}
