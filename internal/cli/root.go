//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRoot constructs the root command of sortid utility.
// It registers generators, parser and uuid conversion commands.
func NewRoot() *cobra.Command {
	var level string

	root := &cobra.Command{
		Use:           "sortid",
		Short:         "Sortable binary identifiers",
		Long:          "sortid generates, parses and converts 96-bit (ObjectId) and 128-bit (ULID) sortable identifiers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&level, "log-level", os.Getenv(EnvLogLevel), "log level (debug, info, warn, error)")

	logger := func(cmd *cobra.Command) *zap.Logger {
		return NewLogger(level, cmd.ErrOrStderr())
	}

	root.AddCommand(NewULIDCommand(logger))
	root.AddCommand(NewOIDCommand(logger))
	root.AddCommand(NewParseCommand())
	root.AddCommand(NewUUIDCommand())
	return root
}

// LoggerFunc resolves logger for executed command
type LoggerFunc func(cmd *cobra.Command) *zap.Logger

func nopLogger(*cobra.Command) *zap.Logger { return zap.NewNop() }
