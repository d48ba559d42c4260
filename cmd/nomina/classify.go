package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurpe/nomina-settlement/internal/format"
)

func newClassifyCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify DATE",
		Short: "Show whether a date is a Sunday or holiday and the rates that apply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.settlements(cmd.Context())
			if err != nil {
				return err
			}
			result, err := svc.Classify(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprintf(w, "Fecha: %s\n", format.LongDate(result.Date))
			fmt.Fprintf(w, "Domingo: %s\n", siNo(result.Day.IsSunday))
			fmt.Fprintf(w, "Festivo: %s\n", siNo(result.Day.IsHoliday))
			fmt.Fprintf(w, "Recargo dominical/festivo: %s\n", format.Percent(&result.SundayRate))
			fmt.Fprintf(w, "Hora extra diurna: %s\n", format.Percent(&result.DayOvertimeRate))
			fmt.Fprintf(w, "Hora extra nocturna: %s\n", format.Percent(&result.NightOvertimeRate))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func siNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}
