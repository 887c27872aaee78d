package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// NewEmailCommand creates the email command group.
func NewEmailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Look up email addresses",
		Long:  "Look up email addresses and their owners in the Datatracker",
	}

	cmd.AddCommand(newEmailGetCommand())
	cmd.AddCommand(newEmailHistoryCommand())

	return cmd
}

func newEmailGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ADDRESS",
		Short: "Get email address details",
		Long:  "Display the Datatracker record for an email address, including its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmailGetCommand(args[0])
		},
	}
}

func runEmailGetCommand(address string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	email, err := client.Emails().Get(context.Background(), address)
	if err != nil {
		return fmt.Errorf("looking up email address: %w", err)
	}

	return outputEmailDetails(email)
}

func outputEmailDetails(email *datatracker.Email) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(email)
	case OutputFormatYAML:
		return StandardYAMLRenderer(email)
	default:
		return renderEmailDetailsTable(email)
	}
}

func renderEmailDetailsTable(email *datatracker.Email) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Address", email.Address)
	_ = table.Append("Person", email.Person.String())
	_ = table.Append("Origin", email.Origin)
	_ = table.Append("Primary", fmt.Sprintf("%t", email.Primary))
	_ = table.Append("Active", fmt.Sprintf("%t", email.Active))
	_ = table.Append("Updated", formatTime(email.Time))

	_ = table.Render()

	return nil
}

func outputEmails(emails []datatracker.Email) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(emails)
	case OutputFormatYAML:
		return StandardYAMLRenderer(emails)
	default:
		return renderEmailsTable(emails)
	}
}

func renderEmailsTable(emails []datatracker.Email) error {
	if len(emails) == 0 {
		_, _ = os.Stdout.WriteString("No email addresses found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Address", "Primary", "Active", "Origin")

	for _, email := range emails {
		_ = table.Append(email.Address, fmt.Sprintf("%t", email.Primary),
			fmt.Sprintf("%t", email.Active), email.Origin)
	}

	_ = table.Render()

	return nil
}

func newEmailHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history ADDRESS",
		Short: "Show an email address's change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmailHistoryCommand(args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "maximum number of results (0 for all)")

	return cmd
}

func runEmailHistoryCommand(address string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := datatracker.NewQueryParams().WithFilter("address", address)

	history, err := collectItems(client.Emails().History(context.Background(), params), limit)
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
		table.Header("Date", "Type", "Person", "Active")

		for _, entry := range history {
			_ = table.Append(formatTime(entry.HistoryDate), entry.HistoryType,
				entry.Person.String(), fmt.Sprintf("%t", entry.Active))
		}

		_ = table.Render()

		return nil
	}
}
