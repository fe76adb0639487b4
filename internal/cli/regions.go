package cli

import (
	"fmt"

	"parlamento/internal/client"
	"parlamento/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newRegionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "regions",
		Aliases: []string{"region"},
		Short:   "Manage autonomous regions",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List autonomous regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.FetchAutonomousRegions(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderRegions(a.store.Snapshot().AutonomousRegions))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an autonomous region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.AddAutonomousRegion(cmd.Context(), regionInputFromFlags(cmd)); err != nil {
				return err
			}
			regions := a.store.Snapshot().AutonomousRegions
			created := regions[len(regions)-1]
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Autonomous region added", "ID: "+created.ID, "Name: "+created.Name))
			return nil
		},
	}
	addRegionFlags(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of an autonomous region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.UpdateAutonomousRegion(cmd.Context(), args[0], regionInputFromFlags(cmd)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Autonomous region updated", "ID: "+args[0]))
			return nil
		},
	}
	addRegionFlags(update)

	remove := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an autonomous region",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteAutonomousRegion(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Autonomous region deleted", "ID: "+args[0]))
			return nil
		},
	}

	cmd.AddCommand(list, add, update, remove)
	return cmd
}

func addRegionFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "region name")
	cmd.Flags().String("title", "", "noble title, e.g. Ducado")
	cmd.Flags().String("coat-of-arms", "", "coat of arms image URL")
}

func regionInputFromFlags(cmd *cobra.Command) client.RegionInput {
	var in client.RegionInput
	for name, dst := range map[string]**string{
		"name":         &in.Name,
		"title":        &in.Title,
		"coat-of-arms": &in.CoatOfArms,
	} {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = &v
		}
	}
	return in
}

func renderRegions(regions []entities.AutonomousRegion) string {
	rows := make([][]string, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, []string{r.ID, r.Name, r.Title, r.CoatOfArms})
	}
	return renderTable([]string{"ID", "Name", "Title", "Coat of arms"}, rows)
}
