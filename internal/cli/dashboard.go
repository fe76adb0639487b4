package cli

import (
	"fmt"
	"strconv"

	"parlamento/internal/client"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's costs, recent laws and region activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.store.FetchDataSources(ctx); err != nil {
				return err
			}
			if err := a.store.FetchAutonomousRegions(ctx); err != nil {
				return err
			}
			if _, err := a.store.EnsureLoaded(ctx); err != nil {
				return err
			}

			st := a.store.Snapshot()
			now := a.now()
			today := client.ComputeTodayCosts(st.Entries, now)
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(out, renderCard("Today's costs",
				client.FormatCosts(today.Totals, today.PercentageChange),
				"",
				"$    "+client.FormatResourceValue(today.Totals.Cash),
				"G    "+client.FormatResourceValue(today.Totals.Gold),
				"bbl  "+client.FormatResourceValue(today.Totals.BBL),
				"kg   "+client.FormatResourceValue(today.Totals.KG),
				"",
				"vs yesterday "+client.FormatPercentage(today.PercentageChange)+", "+strconv.Itoa(len(today.Entries))+" laws today",
			))

			_, _ = fmt.Fprintln(out, section("Recent laws"))
			_, _ = fmt.Fprintln(out, renderEntries(client.RecentLaws(st.Entries, 5)))

			activity := client.RegionActivity(st.Entries, 5)
			rows := make([][]string, 0, len(activity))
			for _, r := range activity {
				rows = append(rows, []string{r.Region, strconv.Itoa(r.Count)})
			}
			_, _ = fmt.Fprintln(out, section("Region activity"))
			_, _ = fmt.Fprintln(out, renderTable([]string{"Region", "Laws"}, rows))

			total := client.TotalResources(st.Entries)
			_, _ = fmt.Fprintln(out, section("Resource distribution"))
			_, _ = fmt.Fprintln(out, renderTable([]string{"$", "G", "bbl", "kg"}, [][]string{{
				client.FormatResourceValue(total.Cash),
				client.FormatResourceValue(total.Gold),
				client.FormatResourceValue(total.BBL),
				client.FormatResourceValue(total.KG),
			}}))

			_, _ = fmt.Fprintln(out, section("Autonomous regions"))
			_, _ = fmt.Fprintln(out, renderRegions(st.AutonomousRegions))
			return nil
		},
	}
}
