package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Jamescog/zemen"
)

func jdnCmd() *cobra.Command {
	var ethiopian bool

	c := &cobra.Command{
		Use:   "jdn <yyyy-mm-dd>",
		Short: "Print the Julian Day Number of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			var jdn int
			if ethiopian {
				jdn, err = zemen.EthiopianToJDN(y, m, d)
			} else {
				jdn, err = zemen.GregorianToJDN(y, m, d)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), jdn)
			return nil
		},
	}

	c.Flags().BoolVarP(&ethiopian, "ethiopian", "e", false, "read the date as an Ethiopian calendar date")
	return c
}

func fromJDNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-jdn <number>",
		Short: "Print the Gregorian and Ethiopian dates of a Julian Day Number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jdn, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid Julian Day Number %q", args[0])
			}
			gd, err := zemen.JDNToGregorian(jdn)
			if err != nil {
				return err
			}
			ed, err := zemen.JDNToEthiopian(jdn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "gregorian: %s\nethiopian: %s\n",
				formatYMD(gd.Year, gd.Month, gd.Day),
				formatYMD(ed.Year, ed.Month, ed.Day))
			return nil
		},
	}
}
