package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/ui"
)

// Config command flags
var (
	cfgNamespace string
	cfgGroup     string
	cfgFile      string
	cfgType      string
)

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configPublishCmd, configDeleteCmd)

	configCmd.PersistentFlags().StringVarP(&cfgNamespace, "namespace", "n", "", "Namespace id (empty for public)")
	configCmd.PersistentFlags().StringVarP(&cfgGroup, "group", "g", nacos.DefaultGroup, "Config group")

	configPublishCmd.Flags().StringVarP(&cfgFile, "file", "f", "", "File with the content, - for stdin (required)")
	configPublishCmd.Flags().StringVarP(&cfgType, "type", "t", "", "Content type (guessed from the data id when empty)")
	_ = configPublishCmd.MarkFlagRequired("file")

	configDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "List and manage config entries",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the config entries of a namespace",
	Example: `  nacos-tui config list
  nacos-tui config list -n dev --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		r, err := connect(ctx)
		if err != nil {
			return err
		}
		defer r.Close()

		entries, err := r.client.ListConfigs(ctx, r.token, cfgNamespace)
		if err != nil {
			return fmt.Errorf("list configs: %w", err)
		}
		return printOutput(cmd.OutOrStdout(), entries, func() string {
			if ui.IsTerminal(os.Stdout) {
				return ui.ConfigTable(entries)
			}
			return nacos.FormatConfigTable(entries)
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <dataId>",
	Short: "Print the content of a config entry",
	Long: `Print the content of a config entry.

The table format prints the raw content so it can be redirected to a file.`,
	Example: `  nacos-tui config get app.yaml -n dev > app.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataID := args[0]
		if err := nacos.ValidateDataID("dataId", dataID); err != nil {
			return err
		}

		ctx := cmd.Context()
		r, err := connect(ctx)
		if err != nil {
			return err
		}
		defer r.Close()

		content, err := r.client.GetConfig(ctx, r.token, cfgNamespace, dataID, cfgGroup)
		if err != nil {
			return fmt.Errorf("get config %s: %w", dataID, err)
		}
		entry := nacos.ConfigEntry{DataID: dataID, Group: cfgGroup, Tenant: cfgNamespace, Content: &content}
		return printOutput(cmd.OutOrStdout(), entry, func() string {
			return strings.TrimRight(content, "\n")
		})
	},
}

var configPublishCmd = &cobra.Command{
	Use:   "publish <dataId>",
	Short: "Create or replace a config entry",
	Example: `  nacos-tui config publish app.yaml -n dev -f ./app.yaml
  cat app.json | nacos-tui config publish app.json -f - --type json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataID := args[0]
		if err := nacos.ValidateDataID("dataId", dataID); err != nil {
			return err
		}
		if err := nacos.ValidateDataID("group", cfgGroup); err != nil {
			return err
		}
		configType := cfgType
		if configType == "" {
			configType = guessConfigType(dataID)
		}
		if err := nacos.ValidateConfigType(configType); err != nil {
			return err
		}
		content, err := readContent(cmd.InOrStdin(), cfgFile)
		if err != nil {
			return err
		}

		entry := nacos.ConfigEntry{DataID: dataID, Group: cfgGroup, Tenant: cfgNamespace, Type: configType}
		return runMutation(cmd, mutation{
			title:     "Publish Config",
			action:    "publish-config",
			namespace: cfgNamespace,
			target:    dataID,
			params:    configParams(dataID, configType, len(content)),
			step:      "Publishing config",
			result:    entry,
			run: func(ctx context.Context, r *remote) error {
				return r.client.PublishConfigChecked(ctx, r.token, cfgNamespace, dataID, cfgGroup, content, configType)
			},
		})
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete <dataId>",
	Short:   "Delete a config entry",
	Example: `  nacos-tui config delete app.yaml -n dev --yes`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataID := args[0]
		if err := nacos.ValidateDataID("dataId", dataID); err != nil {
			return err
		}
		if !assumeYes && !ui.ConfirmDeletion("config", dataID,
			[]string{"Clients listening on this entry lose their configuration"},
			cmd.InOrStdin(), cmd.OutOrStdout()) {
			return errCancelled
		}

		return runMutation(cmd, mutation{
			title:     "Delete Config",
			action:    "delete-config",
			namespace: cfgNamespace,
			target:    dataID,
			params:    configParams(dataID, "", -1),
			step:      "Deleting config",
			result:    map[string]string{"deleted": dataID, "group": cfgGroup, "namespace": cfgNamespace},
			run: func(ctx context.Context, r *remote) error {
				return r.client.DeleteConfigChecked(ctx, r.token, cfgNamespace, dataID, cfgGroup)
			},
		})
	},
}

// configParams lists the header details of a config mutation. A negative size is omitted.
func configParams(dataID, configType string, size int) []ui.Detail {
	ns := cfgNamespace
	if ns == "" {
		ns = nacos.PublicNamespaceLabel
	}
	params := []ui.Detail{
		{Key: "Data ID", Value: dataID},
		{Key: "Group", Value: cfgGroup},
		{Key: "Namespace", Value: ns},
	}
	if configType != "" {
		params = append(params, ui.Detail{Key: "Type", Value: configType})
	}
	if size >= 0 {
		params = append(params, ui.Detail{Key: "Size", Value: fmt.Sprintf("%d bytes", size)})
	}
	return params
}

// readContent reads path, or in when path is "-"
func readContent(in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("read content: %s is empty", path)
	}
	return string(data), nil
}

// guessConfigType maps a data id extension to a content type, defaulting to text
func guessConfigType(dataID string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(dataID), ".")) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "xml":
		return "xml"
	case "html", "htm":
		return "html"
	case "properties":
		return "properties"
	case "toml":
		return "toml"
	}
	return "text"
}
