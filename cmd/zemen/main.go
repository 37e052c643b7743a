// Command zemen converts dates between the Gregorian and Ethiopian
// calendars on the command line.
//
// Usage:
//
//	zemen to-ethiopian 2015-09-11
//	zemen to-gregorian 2008-01-01
//	zemen jdn 2015-09-11
//	zemen jdn --ethiopian 2008-01-01
//	zemen from-jdn 2457277
//	zemen today
//
// Dates are plain numeric yyyy-mm-dd; a leading '-' marks a negative
// year, as used for Ethiopian dates before year zero.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "zemen",
		Short:        "Convert between Gregorian and Ethiopian calendar dates",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		toEthiopianCmd(),
		toGregorianCmd(),
		jdnCmd(),
		fromJDNCmd(),
		todayCmd(),
	)
	return cmd
}
