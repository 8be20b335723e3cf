package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewTaskCmd создаёт группу команд для управления задачами.
func NewTaskCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage task instances",
	}

	cmd.AddCommand(
		newTaskShowCmd(clientFn, outputFn),
		newTaskAssignCmd(clientFn, outputFn),
		newTaskAssignDirectCmd(clientFn, outputFn),
		newTaskFinishCmd(clientFn, outputFn),
		newTaskRejectCmd(clientFn, outputFn),
		newTaskAddTimeCmd(clientFn, outputFn),
	)

	return cmd
}

func taskRow(t *TaskInstanceResponse) []string {
	return []string{t.ID, t.CatalogueID, t.AssignedTo, t.Status, t.Expires}
}

func newTaskShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task instance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			task, err := client.GetTask(args[0])
			if err != nil {
				return err
			}

			out.Print(
				[]string{"ID", "CATALOGUE_ID", "ASSIGNED_TO", "STATUS", "EXPIRES"},
				[][]string{taskRow(task)},
				task,
			)
			return nil
		},
	}
}

func newTaskAssignCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account, kind, toAccount string
	var tasks, tags []string

	cmd := &cobra.Command{
		Use:   "assign ORG_ID",
		Short: "Assign catalogue tasks to tag workers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			assigned, err := client.AssignTasks(args[0], AssignTasksRequest{
				RequestingAccount: account,
				Tasks:             tasks,
				Tags:              tags,
				Assignment: AssignmentRequest{
					Kind:    kind,
					Account: toAccount,
				},
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Assigned %d task(s)", len(assigned.TaskIDs)))
			rows := make([][]string, len(assigned.TaskIDs))
			for i, id := range assigned.TaskIDs {
				rows[i] = []string{id}
			}
			out.Print([]string{"TASK_ID"}, rows, assigned)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.Flags().StringSliceVar(&tasks, "task", nil, "Catalogue task ID (repeatable, required)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag ID (repeatable, required)")
	cmd.Flags().StringVar(&kind, "kind", "RANDOM",
		"Assignment strategy: "+strings.Join([]string{"RANDOM", "COPY", "LOWEST_TASKS", "HIGHEST_TASKS", "TO_ACCOUNT"}, ", "))
	cmd.Flags().StringVar(&toAccount, "to", "", "Target account for TO_ACCOUNT strategy")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("task")
	cmd.MarkFlagRequired("tag")

	return cmd
}

func newTaskAssignDirectCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account, worker string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "assign-direct ORG_ID",
		Short: "Assign catalogue tasks directly to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			assigned, err := client.AssignTasksToAccount(args[0], DirectAssignRequest{
				RequestingAccount: account,
				Worker:            worker,
				Tasks:             tasks,
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Assigned %d task(s) to %s", len(assigned.TaskIDs), worker))
			rows := make([][]string, len(assigned.TaskIDs))
			for i, id := range assigned.TaskIDs {
				rows[i] = []string{id}
			}
			out.Print([]string{"TASK_ID"}, rows, assigned)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.Flags().StringVar(&worker, "worker", "", "Worker account ID (required)")
	cmd.Flags().StringSliceVar(&tasks, "task", nil, "Catalogue task ID (repeatable, required)")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("worker")
	cmd.MarkFlagRequired("task")

	return cmd
}

func newTaskFinishCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "finish ID",
		Short: "Finish a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.FinishTask(args[0], account); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Task finished: %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.MarkFlagRequired("account")

	return cmd
}

func newTaskRejectCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "reject ID",
		Short: "Reject a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.RejectTask(args[0], account); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Task rejected: %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.MarkFlagRequired("account")

	return cmd
}

func newTaskAddTimeCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var account string
	var seconds int64

	cmd := &cobra.Command{
		Use:   "add-time ID",
		Short: "Extend a task deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.AddTime(args[0], account, seconds); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Task %s extended by %ds", args[0], seconds))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Requesting account ID (required)")
	cmd.Flags().Int64Var(&seconds, "seconds", 0, "Extension in seconds (required)")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("seconds")

	return cmd
}
