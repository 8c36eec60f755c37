package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/config"
	"github.com/muurk/nacos-tui/internal/ui"
)

var forceInit bool

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file.

The file goes to --config when given, otherwise to the user configuration
directory. --url and --username are written into it; the password never is.`,
	Example: `  nacos-tui init --url http://nacos.internal:8848 -u nacos
  nacos-tui init --config config/local.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		nacosCfg := config.NacosConfig{URL: serverURL, Username: username}
		if err := config.WriteStarter(path, nacosCfg, forceInit); err != nil {
			return err
		}

		if outputFormat != formatTable {
			return printOutput(cmd.OutOrStdout(), map[string]string{"path": path}, nil)
		}
		res := ui.NewSuccessResult("Configuration written",
			ui.Detail{Key: "Path", Value: path},
			ui.Detail{Key: "Next", Value: "set NACOS_TUI_NACOS_PASSWORD or pass --password"},
		).SetWidth(ui.GetTerminalWidth())
		_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Render())
		return err
	},
}
