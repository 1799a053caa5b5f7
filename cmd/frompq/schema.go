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

func schemaCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("schema", "Print the top level columns of a parquet file and their field kinds")
	file := cmd.Arg("file", "parquet file, or - for stdin").String()

	return cmd, func(ctx context.Context, env *cmdEnv) int {
		data, err := iohelp.ReadFileOrStdin(*file, env.stdin)
		if err != nil {
			return printVerboseErr(describeError(err))
		}

		cols, numRows, err := frompq.Columns(ctx, data)
		if err != nil {
			return printVerboseErr(describeError(err))
		}

		recs := value.NewRecordListBuilder(len(cols))
		for _, col := range cols {
			recs.Append(value.NewRecord(
				value.Field{Name: "column", Value: value.String(col.Name)},
				value.Field{Name: "kind", Value: value.String(col.Kind.String())},
			))
		}

		if err = value.WriteTable(cli.CliOut, recs.Build()); err != nil {
			return printVerboseErr(describeError(err))
		}

		cli.Printf("%d rows\n", numRows)
		return exitOK
	}
}
