package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// NewPersonCommand creates the person command group.
func NewPersonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"people"},
		Short:   "Look up people",
		Long:    "Look up and list people registered in the Datatracker",
	}

	cmd.AddCommand(newPersonGetCommand())
	cmd.AddCommand(newPersonListCommand())
	cmd.AddCommand(newPersonEmailsCommand())
	cmd.AddCommand(newPersonAliasesCommand())
	cmd.AddCommand(newPersonHistoryCommand())

	return cmd
}

func newPersonGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EMAIL_OR_ID_OR_URI",
		Short: "Get person details",
		Long:  "Display details for a person, looked up by email address, numeric ID, or resource URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonGetCommand(args[0])
		},
	}
}

func runPersonGetCommand(arg string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	person, err := findPerson(context.Background(), client, arg)
	if err != nil {
		return err
	}

	return outputPersonDetails(person)
}

// findPerson resolves an email address, a numeric identifier, or a full
// person URI to a person.
func findPerson(ctx context.Context, client datatracker.Client, arg string) (*datatracker.Person, error) {
	switch {
	case arg == "":
		return nil, ErrPersonArgumentRequired
	case strings.Contains(arg, "@"):
		person, err := client.Persons().GetByEmail(ctx, arg)
		if err != nil {
			return nil, fmt.Errorf("looking up person by email: %w", err)
		}

		return person, nil
	case strings.HasPrefix(arg, "/"):
		uri, err := datatracker.ParsePersonURI(arg)
		if err != nil {
			return nil, err
		}

		person, err := client.Persons().Get(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("looking up person: %w", err)
		}

		return person, nil
	default:
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrPersonArgumentRequired, arg)
		}

		person, err := client.Persons().GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("looking up person: %w", err)
		}

		return person, nil
	}
}

func outputPersonDetails(person *datatracker.Person) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(person)
	case OutputFormatYAML:
		return StandardYAMLRenderer(person)
	default:
		return renderPersonDetailsTable(person)
	}
}

func renderPersonDetailsTable(person *datatracker.Person) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.FormatInt(person.ID, 10))
	_ = table.Append("Name", person.Name)
	_ = table.Append("ASCII", person.ASCII)
	_ = table.Append("From draft", derefString(person.NameFromDraft))
	_ = table.Append("URI", person.ResourceURI.String())
	_ = table.Append("Updated", formatTime(person.Time))

	_ = table.Render()

	return nil
}

func newPersonListCommand() *cobra.Command {
	var (
		name         string
		nameContains string
		since        string
		until        string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		Long:  "List people, optionally filtered by name or last-modified time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonListCommand(name, nameContains, since, until, limit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "only people with exactly this name")
	cmd.Flags().StringVar(&nameContains, "name-contains", "", "only people whose name contains this string")
	cmd.Flags().StringVar(&since, "since", "", "only people modified at or after this time")
	cmd.Flags().StringVar(&until, "until", "", "only people modified before this time")
	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "maximum number of results (0 for all)")

	return cmd
}

func runPersonListCommand(name, nameContains, since, until string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := datatracker.NewQueryParams()
	if name != "" {
		params.WithFilter("name", name)
	}

	if nameContains != "" {
		params.WithContains("name", nameContains)
	}

	if err := applyTimeRange(params, "time", since, until); err != nil {
		return err
	}

	people, err := collectItems(client.Persons().List(context.Background(), params), limit)
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}

	return outputPeople(people)
}

func outputPeople(people []datatracker.Person) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(people)
	case OutputFormatYAML:
		return StandardYAMLRenderer(people)
	default:
		return renderPeopleTable(people)
	}
}

func renderPeopleTable(people []datatracker.Person) error {
	if len(people) == 0 {
		_, _ = os.Stdout.WriteString("No people found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Updated")

	for _, person := range people {
		_ = table.Append(strconv.FormatInt(person.ID, 10), person.Name, formatTime(person.Time))
	}

	_ = table.Render()

	return nil
}

func newPersonEmailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "emails EMAIL_OR_ID_OR_URI",
		Short: "List a person's email addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonEmailsCommand(args[0])
		},
	}
}

func runPersonEmailsCommand(arg string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	person, err := findPerson(ctx, client, arg)
	if err != nil {
		return err
	}

	emails, err := client.Emails().ForPerson(ctx, person.ResourceURI).All()
	if err != nil {
		return fmt.Errorf("failed to list email addresses: %w", err)
	}

	return outputEmails(emails)
}

func newPersonAliasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases EMAIL_OR_ID_OR_URI",
		Short: "List a person's name aliases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonAliasesCommand(args[0])
		},
	}
}

func runPersonAliasesCommand(arg string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	person, err := findPerson(ctx, client, arg)
	if err != nil {
		return err
	}

	aliases, err := client.Persons().ListAliases(ctx, person.ResourceURI).All()
	if err != nil {
		return fmt.Errorf("failed to list aliases: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(aliases)
	case OutputFormatYAML:
		return StandardYAMLRenderer(aliases)
	default:
		if len(aliases) == 0 {
			_, _ = os.Stdout.WriteString("No aliases found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name")

		for _, alias := range aliases {
			_ = table.Append(alias.Name)
		}

		_ = table.Render()

		return nil
	}
}

func newPersonHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history EMAIL_OR_ID_OR_URI",
		Short: "Show a person's change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonHistoryCommand(args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "maximum number of results (0 for all)")

	return cmd
}

func runPersonHistoryCommand(arg string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	person, err := findPerson(ctx, client, arg)
	if err != nil {
		return err
	}

	params := datatracker.NewQueryParams().
		WithFilter("id", strconv.FormatInt(person.ID, 10))

	history, err := collectItems(client.Persons().History(ctx, params), limit)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(history)
	case OutputFormatYAML:
		return StandardYAMLRenderer(history)
	default:
		if len(history) == 0 {
			_, _ = os.Stdout.WriteString("No history found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Date", "Type", "Name", "Changed By")

		for _, entry := range history {
			_ = table.Append(formatTime(entry.HistoryDate), entry.HistoryType,
				entry.Name, derefString(entry.HistoryUser))
		}

		_ = table.Render()

		return nil
	}
}
