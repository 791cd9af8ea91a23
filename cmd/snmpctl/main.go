package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danmuck/snmpctl/internal/config"
	"github.com/danmuck/snmpctl/internal/manager"
	"github.com/danmuck/snmpctl/internal/observability"
)

var (
	host    string
	port    int
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "snmpctl",
	Short: "Query and mutate values on a remote management agent",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		observability.InitLogger("snmpctl")
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&host, "host", "H", "127.0.0.1", "agent host")
	flags.IntVarP(&port, "port", "p", config.DefaultPort, "agent port")
	flags.DurationVarP(&timeout, "timeout", "t", manager.DefaultTimeout, "dial and exchange timeout")

	rootCmd.AddCommand(getCmd, setCmd)
}

func newClient() *manager.Client {
	c := manager.NewClient()
	c.Timeout = timeout
	return c
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "snmpctl: %v\n", err)
		os.Exit(1)
	}
}
