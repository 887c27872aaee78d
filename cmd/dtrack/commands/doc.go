package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// NewDocCommand creates the document command group.
func NewDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doc",
		Aliases: []string{"document", "draft"},
		Short:   "Look up documents",
		Long:    "Look up and list documents tracked by the Datatracker, such as Internet-Drafts and RFCs",
	}

	cmd.AddCommand(newDocGetCommand())
	cmd.AddCommand(newDocListCommand())
	cmd.AddCommand(newDocStatesCommand())

	return cmd
}

func newDocGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME_OR_URI",
		Short: "Get document details",
		Long:  "Display details for a document, looked up by name or resource URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocGetCommand(args[0])
		},
	}
}

func runDocGetCommand(arg string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var (
		document *datatracker.Document
	)

	if strings.HasPrefix(arg, "/") {
		uri, err := datatracker.ParseDocumentURI(arg)
		if err != nil {
			return err
		}

		document, err = client.Documents().Get(ctx, uri)
		if err != nil {
			return fmt.Errorf("looking up document: %w", err)
		}
	} else {
		var err error

		document, err = client.Documents().GetByName(ctx, arg)
		if err != nil {
			return fmt.Errorf("looking up document: %w", err)
		}
	}

	return outputDocumentDetails(document)
}

func outputDocumentDetails(document *datatracker.Document) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(document)
	case OutputFormatYAML:
		return StandardYAMLRenderer(document)
	default:
		return renderDocumentDetailsTable(document)
	}
}

func renderDocumentDetailsTable(document *datatracker.Document) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Name", document.Name)
	_ = table.Append("Title", document.Title)
	_ = table.Append("Revision", document.Rev)
	_ = table.Append("Type", document.Type)

	group := NotAvailable
	if document.Group != nil {
		group = document.Group.String()
	}

	_ = table.Append("Group", group)

	shepherd := NotAvailable
	if document.Shepherd != nil {
		shepherd = document.Shepherd.Address()
	}

	_ = table.Append("Shepherd", shepherd)
	_ = table.Append("Stream", derefString(document.Stream))
	_ = table.Append("Updated", formatTime(document.Time))
	_ = table.Append("Expires", formatTime(document.Expires))

	_ = table.Render()

	return nil
}

func newDocListCommand() *cobra.Command {
	var (
		nameContains string
		docType      string
		since        string
		until        string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Long:  "List documents, optionally filtered by name fragment, type, or last-modified time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocListCommand(nameContains, docType, since, until, limit)
		},
	}

	cmd.Flags().StringVar(&nameContains, "name-contains", "", "only documents whose name contains this string")
	cmd.Flags().StringVar(&docType, "type", "", "only documents of this type (e.g. draft)")
	cmd.Flags().StringVar(&since, "since", "", "only documents modified at or after this time")
	cmd.Flags().StringVar(&until, "until", "", "only documents modified before this time")
	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "maximum number of results (0 for all)")

	return cmd
}

func runDocListCommand(nameContains, docType, since, until string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := datatracker.NewQueryParams()
	if nameContains != "" {
		params.WithContains("name", nameContains)
	}

	if docType != "" {
		params.WithFilter("type", docType)
	}

	if err := applyTimeRange(params, "time", since, until); err != nil {
		return err
	}

	documents, err := collectItems(client.Documents().List(context.Background(), params), limit)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(documents)
	case OutputFormatYAML:
		return StandardYAMLRenderer(documents)
	default:
		return renderDocumentsTable(documents)
	}
}

func renderDocumentsTable(documents []datatracker.Document) error {
	if len(documents) == 0 {
		_, _ = os.Stdout.WriteString("No documents found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Rev", "Title", "Updated")

	for _, document := range documents {
		_ = table.Append(document.Name, document.Rev, document.Title, formatTime(document.Time))
	}

	_ = table.Render()

	return nil
}

func newDocStatesCommand() *cobra.Command {
	var stateType string

	cmd := &cobra.Command{
		Use:   "states",
		Short: "List document states",
		Long:  "List the states documents can be in, optionally filtered by state type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocStatesCommand(stateType)
		},
	}

	cmd.Flags().StringVar(&stateType, "type", "", "only states of this state type (e.g. draft-iesg)")

	return cmd
}

func runDocStatesCommand(stateType string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := datatracker.NewQueryParams()
	if stateType != "" {
		params.WithFilter("type", stateType)
	}

	states, err := client.Documents().ListStates(context.Background(), params).All()
	if err != nil {
		return fmt.Errorf("failed to list document states: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(states)
	case OutputFormatYAML:
		return StandardYAMLRenderer(states)
	default:
		if len(states) == 0 {
			_, _ = os.Stdout.WriteString("No document states found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Slug", "Name", "Used", "Description")

		for _, state := range states {
			_ = table.Append(state.Slug, state.Name, fmt.Sprintf("%t", state.Used), state.Desc)
		}

		_ = table.Render()

		return nil
	}
}
