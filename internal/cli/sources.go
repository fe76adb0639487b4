package cli

import (
	"fmt"
	"strconv"

	"parlamento/internal/client"
	"parlamento/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newSourcesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sources",
		Aliases: []string{"source"},
		Short:   "Manage data sources",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List data sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.FetchDataSources(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSources(a.store.Snapshot().DataSources))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a data source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := sourceInputFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := a.store.AddDataSource(cmd.Context(), in); err != nil {
				return err
			}
			sources := a.store.Snapshot().DataSources
			created := sources[len(sources)-1]
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Data source added", "ID: "+created.ID, "URL: "+created.URL))
			return nil
		},
	}
	addSourceFlags(add)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := sourceInputFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := a.store.UpdateDataSource(cmd.Context(), args[0], in); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Data source updated", "ID: "+args[0]))
			return nil
		},
	}
	addSourceFlags(update)

	remove := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a data source",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteDataSource(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Data source deleted", "ID: "+args[0]))
			return nil
		},
	}

	fetch := &cobra.Command{
		Use:   "fetch <id>",
		Short: "Mark a data source as fetched and reload entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.FetchDataSources(cmd.Context()); err != nil {
				return err
			}
			if err := a.store.FetchDataSource(cmd.Context(), args[0]); err != nil {
				return err
			}
			st := a.store.Snapshot()
			fetched := "never"
			for _, d := range st.DataSources {
				if d.ID == args[0] && d.LastFetched != nil {
					fetched = d.LastFetched.Local().Format("2006-01-02 15:04:05")
				}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccess("Data source fetched",
				"ID: "+args[0],
				"Last fetched: "+fetched,
				"Entries: "+strconv.Itoa(len(st.Entries)),
			))
			return nil
		},
	}

	cmd.AddCommand(list, add, update, remove, fetch)
	return cmd
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("url", "", "feed URL")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().Bool("active", false, "whether the source is active")
	cmd.Flags().String("last-fetched", "", "last fetch time, e.g. 2024-01-31T10:00")
}

func sourceInputFromFlags(cmd *cobra.Command) (client.DataSourceInput, error) {
	var in client.DataSourceInput
	f := cmd.Flags()
	if f.Changed("url") {
		v, _ := f.GetString("url")
		in.URL = &v
	}
	if f.Changed("description") {
		v, _ := f.GetString("description")
		in.Description = &v
	}
	if f.Changed("active") {
		v, _ := f.GetBool("active")
		in.Active = &v
	}
	if f.Changed("last-fetched") {
		raw, _ := f.GetString("last-fetched")
		t, err := entities.ParseTimestamp(raw)
		if err != nil {
			return in, err
		}
		in.LastFetched = &t
	}
	return in, nil
}

func renderSources(sources []entities.DataSource) string {
	rows := make([][]string, 0, len(sources))
	for _, d := range sources {
		fetched := "never"
		if d.LastFetched != nil {
			fetched = d.LastFetched.Local().Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{d.ID, d.URL, d.Description, strconv.FormatBool(d.Active), fetched})
	}
	return renderTable([]string{"ID", "URL", "Description", "Active", "Last fetched"}, rows)
}
