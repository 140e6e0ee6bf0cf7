package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Manage the tracked tickers",
}

var portfolioAddCmd = &cobra.Command{
	Use:   "add <ticker>...",
	Short: "Add tickers to the portfolio",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, t := range args {
			ticker := strings.ToUpper(t)
			added, err := a.Portfolio.Add(ticker)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("added %s\n", ticker)
			} else {
				fmt.Printf("%s already tracked\n", ticker)
			}
		}
		return nil
	},
}

var portfolioRemoveCmd = &cobra.Command{
	Use:   "remove <ticker>...",
	Short: "Remove tickers from the portfolio",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, t := range args {
			ticker := strings.ToUpper(t)
			removed, err := a.Portfolio.Remove(ticker)
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("removed %s\n", ticker)
			} else {
				fmt.Printf("%s not tracked\n", ticker)
			}
		}
		return nil
	},
}

var portfolioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tracked tickers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		tickers := a.Portfolio.List()
		if len(tickers) == 0 {
			fmt.Println("portfolio is empty")
			return nil
		}
		for _, t := range tickers {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	portfolioCmd.AddCommand(portfolioAddCmd, portfolioRemoveCmd, portfolioListCmd)
	rootCmd.AddCommand(portfolioCmd)
}
