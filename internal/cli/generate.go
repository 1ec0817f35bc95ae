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
	"fmt"
	"time"

	"github.com/fogfish/sortid"
	"github.com/spf13/cobra"
)

type generateOpts struct {
	monotonic bool
	timestamp int64
	count     int
}

func (opts *generateOpts) bind(cmd *cobra.Command, unit string) {
	cmd.Flags().BoolVar(&opts.monotonic, "monotonic", false, "issue strictly increasing identifiers")
	cmd.Flags().Int64Var(&opts.timestamp, "timestamp", 0, "explicit timestamp, "+unit+" since unix epoch")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of identifiers")
}

func (opts *generateOpts) validate() error {
	if opts.count < 1 {
		return fmt.Errorf("count must be positive, got %d", opts.count)
	}
	return nil
}

// NewULIDCommand generates 128-bit identifiers
func NewULIDCommand(logger LoggerFunc) *cobra.Command {
	if logger == nil {
		logger = nopLogger
	}

	var opts generateOpts
	cmd := &cobra.Command{
		Use:   "ulid",
		Short: "Generate 128-bit identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			explicit := cmd.Flags().Changed("timestamp")

			next := func() (sortid.ULID, error) {
				return sortid.NewULID()
			}

			switch {
			case opts.monotonic:
				config := []sortid.Config{
					sortid.WithLogger(logger(cmd)),
					sortid.WithOverflowFromEnv(),
				}
				if explicit {
					ms := opts.timestamp
					config = append(config,
						sortid.WithChronos(sortid.NewClock(sortid.WithClockMillis(func() int64 { return ms }))),
					)
				}
				issuer := sortid.NewIssuer(config...)
				next = issuer.ULID
			case explicit:
				g := sortid.NewGenerator()
				next = func() (sortid.ULID, error) { return g.ULIDWithTimestamp(opts.timestamp) }
			}

			for i := 0; i < opts.count; i++ {
				uid, err := next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), uid.String())
			}
			return nil
		},
	}
	opts.bind(cmd, "milliseconds")
	return cmd
}

// NewOIDCommand generates 96-bit identifiers
func NewOIDCommand(logger LoggerFunc) *cobra.Command {
	if logger == nil {
		logger = nopLogger
	}

	var opts generateOpts
	cmd := &cobra.Command{
		Use:   "oid",
		Short: "Generate 96-bit identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			explicit := cmd.Flags().Changed("timestamp")

			next := func() (sortid.OID, error) {
				return sortid.NewOID()
			}

			switch {
			case opts.monotonic:
				config := []sortid.Config{
					sortid.WithLogger(logger(cmd)),
					sortid.WithOverflowFromEnv(),
				}
				if explicit {
					t := time.Unix(opts.timestamp, 0)
					config = append(config,
						sortid.WithChronos(sortid.NewClock(sortid.WithClock(func() time.Time { return t }))),
					)
				}
				issuer := sortid.NewIssuer(config...)
				next = issuer.OID
			case explicit:
				g := sortid.NewGenerator()
				next = func() (sortid.OID, error) { return g.OIDWithTimestamp(opts.timestamp) }
			}

			for i := 0; i < opts.count; i++ {
				oid, err := next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), oid.String())
			}
			return nil
		},
	}
	opts.bind(cmd, "seconds")
	return cmd
}
