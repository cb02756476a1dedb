package cli

import (
	"github.com/spf13/cobra"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
)

func newReconcileCmd(root *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Group a snapshot's accounts across bureaus and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}

			snapshot, err := readSnapshot(file)
			if err != nil {
				return err
			}

			svc := reconciliation.NewService(logger, reconciliation.Options{
				Source:        "cli",
				WalletLinking: cfg.WalletLinkingEnabled,
			})
			result, err := svc.ReconcileAccounts(cmd.Context(), snapshot.Accounts, snapshot.WalletCards)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (YAML or JSON, - for stdin)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newInquiriesCmd(root *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "Group a snapshot's inquiries into applications and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := root.load()
			if err != nil {
				return err
			}

			snapshot, err := readSnapshot(file)
			if err != nil {
				return err
			}

			svc := reconciliation.NewService(logger, reconciliation.Options{Source: "cli"})
			result, err := svc.GroupInquiries(cmd.Context(), snapshot.Inquiries, snapshot.UserGroups)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (YAML or JSON, - for stdin)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
