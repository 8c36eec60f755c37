package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/ui"
)

// Namespace command flags
var (
	nsID          string
	nsName        string
	nsDescription string
	assumeYes     bool
)

func init() {
	namespaceCmd.AddCommand(namespaceListCmd, namespaceCreateCmd, namespaceUpdateCmd, namespaceDeleteCmd)

	namespaceCreateCmd.Flags().StringVar(&nsID, "id", "", "Namespace id (generated when empty)")
	namespaceCreateCmd.Flags().StringVar(&nsName, "name", "", "Display name (required)")
	namespaceCreateCmd.Flags().StringVar(&nsDescription, "desc", "", "Description")
	_ = namespaceCreateCmd.MarkFlagRequired("name")

	namespaceUpdateCmd.Flags().StringVar(&nsName, "name", "", "New display name (required)")
	namespaceUpdateCmd.Flags().StringVar(&nsDescription, "desc", "", "New description")
	_ = namespaceUpdateCmd.MarkFlagRequired("name")

	namespaceDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(namespaceCmd)
}

var namespaceCmd = &cobra.Command{
	Use:     "namespace",
	Aliases: []string{"ns"},
	Short:   "List and manage namespaces",
}

var namespaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List namespaces",
	Example: `  nacos-tui namespace list
  nacos-tui namespace list --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		r, err := connect(ctx)
		if err != nil {
			return err
		}
		defer r.Close()

		namespaces, err := r.client.ListNamespaces(ctx, r.token)
		if err != nil {
			return fmt.Errorf("list namespaces: %w", err)
		}
		return printOutput(cmd.OutOrStdout(), namespaces, func() string {
			if ui.IsTerminal(os.Stdout) {
				return ui.NamespaceTable(namespaces)
			}
			return nacos.FormatNamespaceTable(namespaces)
		})
	},
}

var namespaceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a namespace",
	Example: `  nacos-tui namespace create --name Development
  nacos-tui namespace create --id dev --name Development --desc "team sandbox"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := nacos.ValidateNamespaceName(nsName); err != nil {
			return err
		}
		if err := nacos.ValidateNamespaceID(nsID); err != nil {
			return err
		}
		id := nsID
		if id == "" {
			id = uuid.NewString()
		}

		ns := nacos.Namespace{ID: id, Name: nsName, Quota: nacos.DefaultQuota, Kind: nacos.KindUserCreated}
		if nsDescription != "" {
			ns.Description = &nsDescription
		}

		return runMutation(cmd, mutation{
			title:  "Create Namespace",
			action: "create-namespace",
			target: id,
			params: []ui.Detail{{Key: "ID", Value: id}, {Key: "Name", Value: nsName}},
			step:   "Creating namespace",
			result: ns,
			run: func(ctx context.Context, r *remote) error {
				return r.client.CreateNamespaceChecked(ctx, r.token, id, nsName, nsDescription)
			},
		})
	},
}

var namespaceUpdateCmd = &cobra.Command{
	Use:     "update <id>",
	Short:   "Rename a namespace or change its description",
	Example: `  nacos-tui namespace update dev --name Development --desc "shared sandbox"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := checkMutableNamespace(id, "updated"); err != nil {
			return err
		}
		if err := nacos.ValidateNamespaceName(nsName); err != nil {
			return err
		}

		ns := nacos.Namespace{ID: id, Name: nsName, Kind: nacos.KindUserCreated}
		if nsDescription != "" {
			ns.Description = &nsDescription
		}

		return runMutation(cmd, mutation{
			title:  "Update Namespace",
			action: "update-namespace",
			target: id,
			params: []ui.Detail{{Key: "ID", Value: id}, {Key: "Name", Value: nsName}},
			step:   "Updating namespace",
			result: ns,
			run: func(ctx context.Context, r *remote) error {
				return r.client.UpdateNamespaceChecked(ctx, r.token, id, nsName, nsDescription)
			},
		})
	},
}

var namespaceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a namespace",
	Long: `Delete a namespace.

You are asked to type the namespace id back unless --yes is given.
The public namespace cannot be deleted.`,
	Example: `  nacos-tui namespace delete dev
  nacos-tui namespace delete dev --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := checkMutableNamespace(id, "deleted"); err != nil {
			return err
		}
		if !assumeYes && !ui.ConfirmDeletion("namespace", id,
			[]string{"Configs in this namespace become unreachable", "This cannot be undone"},
			cmd.InOrStdin(), cmd.OutOrStdout()) {
			return errCancelled
		}

		return runMutation(cmd, mutation{
			title:  "Delete Namespace",
			action: "delete-namespace",
			target: id,
			params: []ui.Detail{{Key: "ID", Value: id}},
			step:   "Deleting namespace",
			result: map[string]string{"deleted": id},
			run: func(ctx context.Context, r *remote) error {
				return r.client.DeleteNamespaceChecked(ctx, r.token, id)
			},
		})
	},
}

// checkMutableNamespace rejects the public namespace
func checkMutableNamespace(id, verb string) error {
	if id == "" || id == nacos.PublicNamespaceLabel {
		return fmt.Errorf("the public namespace cannot be %s", verb)
	}
	return nacos.ValidateNamespaceID(id)
}
