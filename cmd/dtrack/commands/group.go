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

// NewGroupCommand creates the group command group.
func NewGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"wg"},
		Short:   "Look up groups",
		Long:    "Look up and list groups, such as IETF working groups",
	}

	cmd.AddCommand(newGroupGetCommand())
	cmd.AddCommand(newGroupListCommand())

	return cmd
}

func newGroupGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACRONYM_OR_URI",
		Short: "Get group details",
		Long:  "Display details for a group, looked up by acronym or resource URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroupGetCommand(args[0])
		},
	}
}

func runGroupGetCommand(arg string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var group *datatracker.Group

	if strings.HasPrefix(arg, "/") {
		uri, err := datatracker.ParseGroupURI(arg)
		if err != nil {
			return err
		}

		group, err = client.Groups().Get(ctx, uri)
		if err != nil {
			return fmt.Errorf("looking up group: %w", err)
		}
	} else {
		var err error

		group, err = client.Groups().GetByAcronym(ctx, arg)
		if err != nil {
			return fmt.Errorf("looking up group: %w", err)
		}
	}

	return outputGroupDetails(ctx, client, group)
}

func outputGroupDetails(ctx context.Context, client datatracker.Client, group *datatracker.Group) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(group)
	case OutputFormatYAML:
		return StandardYAMLRenderer(group)
	default:
		return renderGroupDetailsTable(ctx, client, group)
	}
}

func renderGroupDetailsTable(ctx context.Context, client datatracker.Client, group *datatracker.Group) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Acronym", group.Acronym)
	_ = table.Append("Name", group.Name)

	// The state and type are typed references; resolve them for display.
	state := group.State.String()
	if resolved, err := client.Groups().GetState(ctx, group.State); err == nil {
		state = resolved.Name
	}

	_ = table.Append("State", state)

	groupType := group.Type.String()
	if resolved, err := client.Groups().GetType(ctx, group.Type); err == nil {
		groupType = resolved.VerboseName
	}

	_ = table.Append("Type", groupType)
	_ = table.Append("Parent", group.Parent.String())
	_ = table.Append("List", group.ListEmail)
	_ = table.Append("Updated", formatTime(group.Time))

	_ = table.Render()

	return nil
}

func newGroupListCommand() *cobra.Command {
	var (
		groupType    string
		nameContains string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Long:  "List groups, optionally filtered by type or name fragment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroupListCommand(groupType, nameContains, limit)
		},
	}

	cmd.Flags().StringVar(&groupType, "type", "", "only groups of this type (e.g. wg)")
	cmd.Flags().StringVar(&nameContains, "name-contains", "", "only groups whose name contains this string")
	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "maximum number of results (0 for all)")

	return cmd
}

func runGroupListCommand(groupType, nameContains string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := datatracker.NewQueryParams()
	if groupType != "" {
		params.WithFilter("type", groupType)
	}

	if nameContains != "" {
		params.WithContains("name", nameContains)
	}

	groups, err := collectItems(client.Groups().List(context.Background(), params), limit)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(groups)
	case OutputFormatYAML:
		return StandardYAMLRenderer(groups)
	default:
		return renderGroupsTable(groups)
	}
}

func renderGroupsTable(groups []datatracker.Group) error {
	if len(groups) == 0 {
		_, _ = os.Stdout.WriteString("No groups found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Acronym", "Name", "List")

	for _, group := range groups {
		_ = table.Append(group.Acronym, group.Name, group.ListEmail)
	}

	_ = table.Render()

	return nil
}
