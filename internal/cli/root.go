package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsearch/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tsearch <file> <word> <workers>",
	Short: "Count whole-word occurrences in large text files",
	Long: `tsearch counts whole-word occurrences of a word in a text file, either
with one sequential pass or with parallel workers that each scan a
disjoint range of the file. The parallel count is always identical to
the sequential one.

A word matches only when it is not embedded in a longer token: the
bytes around it must be absent or not ASCII alphanumeric.

Example usage:
  tsearch biglog.txt ERROR 4     # four parallel workers
  tsearch biglog.txt ERROR 0     # sequential scan
  tsearch scan -w ERROR ./logs   # every matching file under ./logs`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE:         runSearch,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tsearch.yaml)")
}
