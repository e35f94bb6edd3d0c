package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsearch/config"
	"tsearch/internal/adapter/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the search history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func openHistory() (*store.HistoryStore, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	dbPath := config.HistoryDBPath(wd)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, dbPath, nil
	}
	st, err := store.NewHistoryStore(dbPath)
	return st, dbPath, err
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, _, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	if st == nil {
		fmt.Println("No search history.")
		return nil
	}
	defer st.Close()

	entries, err := st.Recent(cfg.History.Limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No search history.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-10s %8d hits  %4d ms  %s (%s, %d workers)\n",
			e.At.Format("2006-01-02 15:04:05"), e.Word, e.Count, e.ElapsedMS, e.Path, e.Mode, e.Workers)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	st, _, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	if st == nil {
		fmt.Println("No search history.")
		return nil
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Println("Search history cleared.")
	return nil
}
