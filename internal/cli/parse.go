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
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/fogfish/sortid"
	"github.com/spf13/cobra"
)

// NewParseCommand decodes identifier and prints its fields.
// The shape is detected by the length of text.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Decode identifier and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			w := cmd.OutOrStdout()

			if len(text) == sortid.OIDTextSize {
				oid, err := sortid.ParseOID(text)
				if err != nil {
					return err
				}
				printFields(w, "oid", oid.String(), oid.Timestamp(), oid.Time(), oid.Counter(), oid.Payload())
				return nil
			}

			uid, err := sortid.ParseULID(text)
			if err != nil {
				return err
			}
			printFields(w, "ulid", uid.String(), uid.Timestamp(), uid.Time(), uid.Counter(), uid.Payload())
			return nil
		},
	}
}

func printFields(w io.Writer, kind, canonical string, ts int64, t time.Time, counter uint32, payload []byte) {
	fmt.Fprintf(w, "type:      %s\n", kind)
	fmt.Fprintf(w, "canonical: %s\n", canonical)
	fmt.Fprintf(w, "timestamp: %d\n", ts)
	fmt.Fprintf(w, "time:      %s\n", t.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(w, "counter:   %d\n", counter)
	fmt.Fprintf(w, "payload:   %s\n", hex.EncodeToString(payload))
}
