package cmd

import (
	"context"
	"fmt"
	"strings"

	"skillcal_backend/internal/app"
	"skillcal_backend/internal/catalog"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file, or the configured bank when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := openBank(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d assessments\n", bank.Len())
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List the assessments of a question bank",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := openBank(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-32s  %-10s  %9s  %9s  %s\n", "ID", "Kind", "Questions", "Max", "Title")
		fmt.Fprintln(out, strings.Repeat("-", 90))
		for _, a := range bank.List() {
			s := a.Summary()
			fmt.Fprintf(out, "%-32s  %-10s  %9d  %9d  %s\n", s.ID, s.Kind, s.QuestionCount, s.MaxScore, s.Title)
		}
		fmt.Fprintf(out, "\n%d assessments\n", bank.Len())
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankListCmd)
}

func openBank(cmd *cobra.Command, args []string) (*catalog.Bank, error) {
	if len(args) == 1 {
		return catalog.LoadFile(args[0])
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return app.LoadBank(context.Background(), &cfg.Storage)
}
