package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-padic/pkg/console"
	"github.com/markkurossi/tabulate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging applies the verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// getFormat determines how results tables are laid out from the persistent
// flags.
func getFormat(cmd *cobra.Command) console.Format {
	format := console.Format{Style: tabulate.ASCII, Series: GetUint(cmd, "series")}
	//
	if !GetFlag(cmd, "ascii") {
		format.Style = tabulate.UnicodeLight
	}
	//
	return format
}
