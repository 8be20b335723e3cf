// Delega CLI — инструмент командной строки для управления
// организациями, задачами и каталогом через HTTP API.
//
// Использование:
//
//	delega [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	org        Управление организациями
//	task       Управление экземплярами задач
//	catalogue  Управление каталогом задач
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Delega/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "delega",
		Short:         "Delega CLI — task delegation tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewOrgCmd(clientFn, outputFn),
		cli.NewTaskCmd(clientFn, outputFn),
		cli.NewCatalogueCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
