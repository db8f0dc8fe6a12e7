package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkordes/contactbook/internal/command"
	"github.com/pkordes/contactbook/internal/domain"
)

// execute runs the command line args. stdout receives command feedback,
// stderr receives logs. Resources opened by the command are released
// before it returns, whether or not the command succeeded.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}
	defer a.teardown()

	root := newRootCmd(a)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// newRootCmd builds the command tree over a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "contactbook",
		Short: "Tag, find and archive the people in your address book",
		Long: `contactbook keeps an address book of people, each carrying an ordered set
of tags and projects. Commands change one person at a time and save the
book immediately; snapshot archives the whole book to a timestamped file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")

	root.AddCommand(
		newFindCmd(a),
		newListCmd(a),
		newTagCmd(a),
		newUnTagCmd(a),
		newSnapshotCmd(a),
		newServeCmd(a),
		newMigrateCmd(a),
	)
	return root
}

// run opens the store and executes c, printing its feedback.
func (a *app) run(cmd *cobra.Command, c command.Command) (command.Result, error) {
	exec, err := a.open(cmd.Context())
	if err != nil {
		return command.Result{}, err
	}
	res, err := exec.Run(cmd.Context(), c)
	if err != nil {
		return command.Result{}, err
	}
	fmt.Fprintln(a.stdout, res.Feedback)
	return res, nil
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "List persons whose name contains any keyword, or whose phone equals any number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd, command.Find{Keywords: args})
			if err != nil {
				return err
			}
			printPeople(a.stdout, res.People)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.run(cmd, command.List{})
			if err != nil {
				return err
			}
			printPeople(a.stdout, res.People)
			return nil
		},
	}
}

func newTagCmd(a *app) *cobra.Command {
	var phone, tagName, projectName string

	cmd := &cobra.Command{
		Use:   "tag --phone PHONE (--tag TAG | --project PROJECT)",
		Short: "Add a tag or a project to a person",
		Example: `  contactbook tag --phone 98765432 --tag friends
  contactbook tag --phone 98765432 --project project-x`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, kind := tagName, domain.KindTag
			if projectName != "" {
				name, kind = projectName, domain.KindProject
			}
			tag, err := domain.NewTagOfKind(name, kind)
			if err != nil {
				return &command.Error{Message: domain.TagConstraints, Err: err}
			}

			res, err := a.run(cmd, command.Tag{Phone: domain.Phone(phone), Tag: tag})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, res.Person.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number of the person")
	cmd.Flags().StringVarP(&tagName, "tag", "t", "", "tag to add")
	cmd.Flags().StringVar(&projectName, "project", "", "project to add")
	_ = cmd.MarkFlagRequired("phone")
	cmd.MarkFlagsOneRequired("tag", "project")
	cmd.MarkFlagsMutuallyExclusive("tag", "project")
	return cmd
}

func newUnTagCmd(a *app) *cobra.Command {
	var (
		phone    string
		tags     []string
		projects []string
	)

	cmd := &cobra.Command{
		Use:   "untag --phone PHONE [--tag TAG]... [--project PROJECT]...",
		Short: "Remove tags and projects from a person",
		Long: `Remove tags and projects from a person. Names match regardless of case;
names the person does not carry are ignored, but at least one must match.`,
		Example: `  contactbook untag --phone 98765432 --tag friends --project project-x`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toRemove, err := domain.NewTags(tags, domain.KindTag)
			if err != nil {
				return &command.Error{Message: domain.TagConstraints, Err: err}
			}
			projectsToRemove, err := domain.NewTags(projects, domain.KindProject)
			if err != nil {
				return &command.Error{Message: domain.TagConstraints, Err: err}
			}

			res, err := a.run(cmd, command.UnTag{Phone: domain.Phone(phone), Tags: toRemove, Projects: projectsToRemove})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, res.Person.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number of the person")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag to remove (repeatable)")
	cmd.Flags().StringArrayVar(&projects, "project", nil, "project to remove (repeatable)")
	_ = cmd.MarkFlagRequired("phone")
	cmd.MarkFlagsOneRequired("tag", "project")
	return cmd
}

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Archive the whole address book to a timestamped file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.run(cmd, command.Snapshot{})
			return err
		},
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := a.openPool(cmd.Context())
			if err != nil {
				return err
			}
			n, err := a.migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Applied %d migration(s)\n", n)
			return nil
		},
	}
}

// printPeople writes one numbered line per person.
func printPeople(w io.Writer, people []domain.Person) {
	for i, p := range people {
		fmt.Fprintf(w, "%d. %s\n", i+1, p)
	}
}
