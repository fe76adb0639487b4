package cli

import (
	"fmt"
	"strconv"

	"parlamento/internal/client"
	"parlamento/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newAnalysisCmd(a *app) *cobra.Command {
	var rangeFlag, startFlag, endFlag string

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show costs per region and per day over a time range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := client.ParseTimeRange(rangeFlag)
			if err != nil {
				return err
			}
			now := a.now()
			custom := client.DateRange{Start: now.AddDate(0, 0, -30), End: now}
			if startFlag != "" {
				if custom.Start, err = entities.ParseTimestamp(startFlag); err != nil {
					return err
				}
			}
			if endFlag != "" {
				if custom.End, err = entities.ParseTimestamp(endFlag); err != nil {
					return err
				}
			}

			if err := a.store.FetchData(cmd.Context()); err != nil {
				return err
			}
			entries := client.FilterByTimeRange(a.store.Snapshot().Entries, tr, custom, now)
			out := cmd.OutOrStdout()

			start, end := tr.Bounds(custom, now)
			_, _ = fmt.Fprintln(out, renderCard("Analysis",
				fmt.Sprintf("%s to %s", start.Format(dayLayout), end.Format(dayLayout)),
				strconv.Itoa(len(entries))+" laws",
			))
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, cliMuted.Render("No data available"))
				return nil
			}

			total := client.TotalResources(entries)
			_, _ = fmt.Fprintln(out, section("Resources"))
			_, _ = fmt.Fprintln(out, renderTable([]string{"$", "G", "bbl", "kg"}, [][]string{{
				client.FormatResourceValue(total.Cash),
				client.FormatResourceValue(total.Gold),
				client.FormatResourceValue(total.BBL),
				client.FormatResourceValue(total.KG),
			}}))

			daily := client.DailyTotals(entries, now.Location())
			rows := make([][]string, 0, len(daily))
			for _, d := range daily {
				rows = append(rows, []string{
					formatDay(d.Day),
					client.FormatResourceValue(d.Resources.Cash),
					client.FormatResourceValue(d.Resources.Gold),
					client.FormatResourceValue(d.Resources.BBL),
					client.FormatResourceValue(d.Resources.KG),
				})
			}
			_, _ = fmt.Fprintln(out, section("Trend"))
			_, _ = fmt.Fprintln(out, renderTable([]string{"Day", "$", "G", "bbl", "kg"}, rows))

			regions := client.RegionCostTable(entries)
			rows = make([][]string, 0, len(regions))
			for _, r := range regions {
				rows = append(rows, []string{
					r.Region,
					fmt.Sprintf("%.0f", r.Resources.Cash),
					fmt.Sprintf("%.0f", r.Resources.Gold),
					fmt.Sprintf("%.0f", r.Resources.BBL),
					fmt.Sprintf("%.0f", r.Resources.KG),
					strconv.Itoa(r.Count),
				})
			}
			_, _ = fmt.Fprintln(out, section("By region"))
			_, _ = fmt.Fprintln(out, renderTable([]string{"Region", "$", "G", "bbl", "kg", "Laws"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", string(client.Range30Days), "7days, 30days, 90days or custom")
	cmd.Flags().StringVar(&startFlag, "start", "", "custom range start day (default 30 days ago)")
	cmd.Flags().StringVar(&endFlag, "end", "", "custom range end day (default today)")
	return cmd
}
