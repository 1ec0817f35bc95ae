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

	"github.com/fogfish/sortid"
	"github.com/spf13/cobra"
)

// NewUUIDCommand reinterprets 128-bit identifier as UUID and back.
// Canonical ULID text prints UUID, any UUID text prints ULID.
func NewUUIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid <ulid|uuid>",
		Short: "Convert between ULID and UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]

			if len(text) == sortid.ULIDTextSize || len(text) == sortid.ULIDTextSize-1 {
				uid, err := sortid.ParseULID(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sortid.ToUUID(uid).String())
				return nil
			}

			uid, err := sortid.ULIDFromUUIDString(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uid.String())
			return nil
		},
	}
}
