package cli

import (
	"fmt"
	"time"

	"parlamento/internal/client"
	"parlamento/internal/domain/entities"

	"github.com/spf13/cobra"
)

const dayLayout = "2006-01-02"

func newEntriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "Manage parliament entries",
	}
	cmd.AddCommand(
		newEntriesListCmd(a),
		newEntriesAddCmd(a),
		newEntriesUpdateCmd(a),
		newEntriesDeleteCmd(a),
	)
	return cmd
}

func newEntriesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.FetchData(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderEntries(a.store.Snapshot().Entries))
			return nil
		},
	}
}

func newEntriesAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a law and its cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := entryInputFromFlags(cmd, entities.Resources{})
			if err != nil {
				return err
			}
			if in.Resources == nil {
				in.Resources = &entities.Resources{}
			}
			if err := a.store.AddEntry(cmd.Context(), in); err != nil {
				return err
			}
			entries := a.store.Snapshot().Entries
			created := entries[len(entries)-1]
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Entry added", "ID: "+created.ID, "Law: "+created.Law))
			return nil
		},
	}
	addEntryFlags(cmd)
	return cmd
}

func newEntriesUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			// Resources are replaced as a whole, so unchanged components
			// come from the current entry.
			var current entities.Resources
			if resourceFlagChanged(cmd) {
				if err := a.store.FetchData(cmd.Context()); err != nil {
					return err
				}
				for _, e := range a.store.Snapshot().Entries {
					if e.ID == id {
						current = e.Resources
					}
				}
			}
			in, err := entryInputFromFlags(cmd, current)
			if err != nil {
				return err
			}
			if err := a.store.UpdateEntry(cmd.Context(), id, in); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Entry updated", "ID: "+id))
			return nil
		},
	}
	addEntryFlags(cmd)
	return cmd
}

func newEntriesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Entry deleted", "ID: "+args[0]))
			return nil
		},
	}
}

var resourceFlags = []string{"cash", "gold", "bbl", "kg"}

func addEntryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("date", "", "date of the law, e.g. 2024-01-31 or 2024-01-31T10:00 (default now)")
	f.String("law", "", "law title")
	f.String("law-url", "", "link to the law")
	f.String("region", "", "autonomous region name")
	f.String("construction", "", "construction type (Hospital, Estrada, Base Militar, Escola, Porto)")
	f.Float64("cash", 0, "cash cost")
	f.Float64("gold", 0, "gold cost")
	f.Float64("bbl", 0, "oil cost in barrels")
	f.Float64("kg", 0, "material cost in kg")
}

func resourceFlagChanged(cmd *cobra.Command) bool {
	for _, name := range resourceFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// entryInputFromFlags sends only the flags given on the command line. When
// any resource flag is set, the others are taken from base.
func entryInputFromFlags(cmd *cobra.Command, base entities.Resources) (client.EntryInput, error) {
	var in client.EntryInput
	f := cmd.Flags()

	if f.Changed("date") {
		raw, _ := f.GetString("date")
		d, err := entities.ParseTimestamp(raw)
		if err != nil {
			return in, err
		}
		in.Date = &d
	}
	for name, dst := range map[string]**string{
		"law":          &in.Law,
		"law-url":      &in.LawURL,
		"region":       &in.Region,
		"construction": &in.Construction,
	} {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = &v
		}
	}

	if resourceFlagChanged(cmd) {
		r := base
		for name, dst := range map[string]*float64{"cash": &r.Cash, "gold": &r.Gold, "bbl": &r.BBL, "kg": &r.KG} {
			if f.Changed(name) {
				*dst, _ = f.GetFloat64(name)
			}
		}
		in.Resources = &r
	}
	return in, nil
}

func renderEntries(entries []entities.ParliamentEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			e.Date.Local().Format(dayLayout),
			e.Law,
			e.Region,
			e.Construction,
			client.FormatResourceValue(e.Resources.Cash),
			client.FormatResourceValue(e.Resources.Gold),
			client.FormatResourceValue(e.Resources.BBL),
			client.FormatResourceValue(e.Resources.KG),
		})
	}
	return renderTable([]string{"ID", "Date", "Law", "Region", "Construction", "$", "G", "bbl", "kg"}, rows)
}

func formatDay(t time.Time) string {
	return t.Format("02/01")
}
