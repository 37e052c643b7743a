package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jamescog/zemen"
)

func toEthiopianCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-ethiopian <yyyy-mm-dd>",
		Short: "Convert a Gregorian date to the Ethiopian calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			ed, err := zemen.GregorianToEthiopian(y, m, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatYMD(ed.Year, ed.Month, ed.Day))
			return nil
		},
	}
}

func toGregorianCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-gregorian <yyyy-mm-dd>",
		Short: "Convert an Ethiopian date to the Gregorian calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			gd, err := zemen.EthiopianToGregorian(y, m, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatYMD(gd.Year, gd.Month, gd.Day))
			return nil
		},
	}
}

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's Ethiopian date (East Africa Time)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ed := zemen.Today()
			fmt.Fprintln(cmd.OutOrStdout(), formatYMD(ed.Year, ed.Month, ed.Day))
			return nil
		},
	}
}
