// cmd/repocrew/history.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"repocrew/internal/output"
	"repocrew/internal/store"
)

// historyCmd builds the "history" command: list past runs, or show one
// stored report by ID.
func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past review runs",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openHistory()
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no recorded runs")
				return nil
			}

			for _, r := range runs {
				fmt.Printf("%-36s  %s  %-9s  %s\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Status, r.Repo)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	showCmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print the stored report for one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openHistory()
			if err != nil {
				return err
			}
			defer s.Close()

			run, err := s.GetRun(args[0])
			if err != nil {
				return err
			}

			data := []byte(run.Report)
			if !plainFlag && term.IsTerminal(int(os.Stdout.Fd())) {
				data = output.RenderANSI(data)
			}
			os.Stdout.Write(data)
			return nil
		},
	}
	cmd.AddCommand(showCmd)

	return cmd
}

func openHistory() (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dbPath, err := historyDBPath(cfg)
	if err != nil {
		return nil, err
	}

	return store.NewStore(dbPath)
}
