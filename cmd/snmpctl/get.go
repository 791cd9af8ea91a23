package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/snmpctl/internal/manager"
	"github.com/danmuck/snmpctl/internal/protocol"
)

var getCmd = &cobra.Command{
	Use:   "get <oid> [<oid>...]",
	Short: "Fetch the current value of one or more OIDs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().Get(host, port, args)
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
