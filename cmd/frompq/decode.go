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

	"github.com/attic-labs/kingpin"

	"github.com/dolthub/frompq/cmd/frompq/cli"
	"github.com/dolthub/frompq/libraries/frompq"
	"github.com/dolthub/frompq/libraries/utils/iohelp"
	"github.com/dolthub/frompq/store/value"
)

type decodeFlags struct {
	file       *string
	format     *string
	parallel   *int
	byteMode   *string
	numberMode *string
}

func decodeCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("decode", "Decode a parquet file and print its rows. Reads stdin when no file is given.").Default()

	df := decodeFlags{
		format:     cmd.Flag("format", "output format: json|yaml|text").Short('f').String(),
		parallel:   cmd.Flag("parallel", "number of goroutines converting rows").Default("-1").Int(),
		byteMode:   cmd.Flag("byte-mode", "representation of 8 bit integers: binary|int").String(),
		numberMode: cmd.Flag("number-mode", "representation of floating point numbers: float|decimal").String(),
		file:       cmd.Arg("file", "parquet file, or - for stdin").String(),
	}

	return cmd, func(ctx context.Context, env *cmdEnv) int {
		return runDecode(ctx, env, df)
	}
}

// applyOverrides replaces config values with the flags given on the command line.
func (df decodeFlags) applyOverrides(env *cmdEnv) error {
	cfg := env.cfg
	if *df.format != "" {
		cfg.FormatStr = *df.format
	}
	if *df.parallel >= 0 {
		cfg.Parallelism = *df.parallel
	}
	if *df.byteMode != "" {
		cfg.ByteModeStr = *df.byteMode
	}
	if *df.numberMode != "" {
		cfg.NumberModeStr = *df.numberMode
	}

	return cfg.Validate()
}

func runDecode(ctx context.Context, env *cmdEnv, df decodeFlags) int {
	if err := df.applyOverrides(env); err != nil {
		cli.PrintErrln(err.Error())
		return exitUsage
	}

	cfg := env.cfg
	env.logger.WithField("config", cfg.String()).Debug("resolved config")

	data, err := iohelp.ReadFileOrStdin(*df.file, env.stdin)
	if err != nil {
		return printVerboseErr(describeError(err))
	}

	recs, err := frompq.Decode(ctx, data, frompq.Options{
		Conv:        cfg.ConvOptions(),
		Parallelism: cfg.Parallelism,
		Logger:      env.logger,
	})
	if err != nil {
		return printVerboseErr(describeError(err))
	}

	if err = value.Write(cli.CliOut, cfg.Format(), recs); err != nil {
		return printVerboseErr(describeError(err))
	}

	return exitOK
}
