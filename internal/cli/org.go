package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewOrgCmd создаёт группу команд для управления организациями.
func NewOrgCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organizations",
	}

	cmd.AddCommand(
		newOrgCreateCmd(clientFn, outputFn),
		newOrgShowCmd(clientFn, outputFn),
		newOrgAddTagCmd(clientFn, outputFn),
		newOrgAddWorkerCmd(clientFn, outputFn),
		newOrgAddEditorCmd(clientFn, outputFn),
		newOrgLinkCmd(clientFn, outputFn),
	)

	return cmd
}

func newOrgCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var name, account string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			created, err := client.CreateOrg(name, account)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Organization created: %s", created.ID))
			out.Print(
				[]string{"ID", "NAME", "OWNER"},
				[][]string{{created.ID, name, account}},
				created,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Organization name (required)")
	cmd.Flags().StringVar(&account, "account", "", "Owner account ID (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("account")

	return cmd
}

func newOrgShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show organization details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			org, err := client.GetOrg(args[0])
			if err != nil {
				return err
			}

			if out.jsonMode {
				out.JSON(org)
				return nil
			}

			out.Table(
				[]string{"ID", "NAME", "TAGS", "ACCOUNTS"},
				[][]string{{org.ID, org.Name, strconv.Itoa(len(org.Tags)), strconv.Itoa(len(org.Accounts))}},
			)

			if len(org.Tags) > 0 {
				rows := make([][]string, len(org.Tags))
				for i, tag := range org.Tags {
					rows[i] = []string{tag.ID, tag.Name, strconv.Itoa(len(tag.Editors)), strconv.Itoa(len(tag.Workers))}
				}
				fmt.Println()
				out.Table([]string{"TAG_ID", "NAME", "EDITORS", "WORKERS"}, rows)
			}

			if len(org.Accounts) > 0 {
				rows := make([][]string, len(org.Accounts))
				for i, link := range org.Accounts {
					rows[i] = []string{link.Account, link.Type, strings.Join(link.Tasks, ",")}
				}
				fmt.Println()
				out.Table([]string{"ACCOUNT", "TYPE", "TASKS"}, rows)
			}
			return nil
		},
	}
}

func newOrgAddTagCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var name, account string

	cmd := &cobra.Command{
		Use:   "add-tag ORG_ID",
		Short: "Add a tag to an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			created, err := client.AddTag(args[0], name, account)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Tag created: %s", created.ID))
			out.Print(
				[]string{"TAG_ID", "NAME"},
				[][]string{{created.ID, name}},
				created,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tag name (required)")
	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("account")

	return cmd
}

func newOrgAddWorkerCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account, worker string

	cmd := &cobra.Command{
		Use:   "add-worker ORG_ID TAG_ID",
		Short: "Add a worker to a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.AddWorkerToTag(args[0], args[1], account, worker); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Worker %s added to tag %s", worker, args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.Flags().StringVar(&worker, "worker", "", "Worker account ID (required)")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("worker")

	return cmd
}

func newOrgAddEditorCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account, editor string

	cmd := &cobra.Command{
		Use:   "add-editor ORG_ID TAG_ID",
		Short: "Add an editor to a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.AddEditorToTag(args[0], args[1], account, editor); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Editor %s added to tag %s", editor, args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.Flags().StringVar(&editor, "editor", "", "Editor account ID (required)")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("editor")

	return cmd
}

func newOrgLinkCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account, target, accountType string

	cmd := &cobra.Command{
		Use:   "link ORG_ID",
		Short: "Link an account to an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.LinkAccount(args[0], account, target, accountType); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Account %s linked as %s", target, accountType))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.Flags().StringVar(&target, "target", "", "Account to link (required)")
	cmd.Flags().StringVar(&accountType, "type", "WORKER", "Account type: WORKER or ADMIN")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("target")

	return cmd
}
