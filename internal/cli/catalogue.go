package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCatalogueCmd создаёт группу команд для управления каталогом задач.
func NewCatalogueCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Manage the task catalogue",
	}

	cmd.AddCommand(
		newCatalogueCreateCmd(clientFn, outputFn),
		newCatalogueShowCmd(clientFn, outputFn),
		newCatalogueDeleteCmd(clientFn, outputFn),
	)

	return cmd
}

func newCatalogueCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account, title, description string

	cmd := &cobra.Command{
		Use:   "create ORG_ID",
		Short: "Create a catalogue task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			created, err := client.CreateCatalogueTask(args[0], account, title, description)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Catalogue task created: %s", created.ID))
			out.Print(
				[]string{"ID", "TITLE"},
				[][]string{{created.ID, title}},
				created,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Creating account ID (required)")
	cmd.Flags().StringVar(&title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("title")

	return cmd
}

func newCatalogueShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show catalogue task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			task, err := client.GetCatalogueTask(args[0])
			if err != nil {
				return err
			}

			out.Print(
				[]string{"ID", "ORG", "CREATED_BY", "TITLE"},
				[][]string{{task.ID, task.Organization, task.CreatedBy, task.Title}},
				task,
			)
			return nil
		},
	}
}

func newCatalogueDeleteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a catalogue task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.DeleteCatalogueTask(args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Catalogue task deleted: %s", args[0]))
			return nil
		},
	}
}
