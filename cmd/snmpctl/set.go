package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/snmpctl/internal/manager"
	"github.com/danmuck/snmpctl/internal/protocol"
)

var setCmd = &cobra.Command{
	Use:   "set <oid> <type> <value>",
	Short: "Replace the value of a writable OID",
	Long: `Replace the value of a writable OID.

Accepted types: integer, string, counter, timeticks.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := manager.ParseValue(args[1], args[2])
		if err != nil {
			return err
		}
		result, err := newClient().Set(host, port, []protocol.Binding{{OID: args[0], Value: value}})
		if err != nil {
			return err
		}
		if result.Code != protocol.NoError {
			return fmt.Errorf("agent returned %s", manager.FormatErrorCode(result.Code))
		}
		for _, b := range result.Bindings {
			fmt.Printf("%s = %s: %s\n", b.OID, manager.TypeName(b.Value.Type), manager.FormatValue(b.Value))
		}
		return nil
	},
}
