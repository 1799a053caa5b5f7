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

// Package profile wires the profiling flags of a command to github.com/pkg/profile.
package profile

import (
	"github.com/attic-labs/kingpin"
	"github.com/pkg/profile"
)

const (
	CPU   = "cpu"
	Mem   = "mem"
	Block = "block"
)

// Flags holds the values of the profiling flags of an application.
type Flags struct {
	Mode *string
	Path *string
}

// RegisterProfileFlags adds --profile and --profile-path to |app|.
func RegisterProfileFlags(app *kingpin.Application) Flags {
	return Flags{
		Mode: app.Flag("profile", "write a profile of the given kind while running").Enum(CPU, Mem, Block),
		Path: app.Flag("profile-path", "directory the profile is written to").Default(".").String(),
	}
}

// Stopper flushes profile data. It must be called before the process exits.
type Stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// MaybeStartProfile starts the profile selected by |flags|, if any.
func MaybeStartProfile(flags Flags) Stopper {
	if flags.Mode == nil || *flags.Mode == "" {
		return noopStopper{}
	}

	opts := []func(*profile.Profile){profile.Quiet, profile.NoShutdownHook}
	if flags.Path != nil && *flags.Path != "" {
		opts = append(opts, profile.ProfilePath(*flags.Path))
	}

	switch *flags.Mode {
	case CPU:
		opts = append(opts, profile.CPUProfile)
	case Mem:
		opts = append(opts, profile.MemProfile)
	case Block:
		opts = append(opts, profile.BlockProfile)
	default:
		return noopStopper{}
	}

	return profile.Start(opts...)
}
