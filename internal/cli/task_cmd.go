package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gmolchanov/quadrant/internal/service"
)

// resolveTaskID accepts either a full task id or a unique prefix of one.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks from the command line",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, description, due string
	var urgent, important bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := service.CreateTaskInput{
				Title:       title,
				Description: description,
				Urgent:      urgent,
				Important:   important,
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				input.DueDate = &dueDate
			}

			task, err := app.Tasks.Create(context.Background(), input)
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s [%s %s]\n", task.Title, task.Quadrant(), task.Quadrant().Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "Mark the task urgent")
	cmd.Flags().BoolVar(&important, "important", false, "Mark the task important")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var grouped bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if grouped {
				groups, err := app.Tasks.ListGrouped(ctx)
				if err != nil {
					return err
				}
				for _, g := range groups {
					fmt.Printf("%s: %s (%d)\n", g.Quadrant, g.Label, len(g.Tasks))
					for _, task := range g.Tasks {
						fmt.Printf("  %s %s %s\n", checkbox(task.Done), shortID(task.ID), task.Title)
					}
				}
				return nil
			}

			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}
			for _, task := range tasks {
				fmt.Printf("%s %s [%s] %s\n", checkbox(task.Done), shortID(task.ID), task.Quadrant(), task.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&grouped, "grouped", false, "Group tasks by Eisenhower quadrant")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.MarkDone(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", task.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
