// Package receipt renders a settlement as the plain-text pay stub shown to
// the employee.
package receipt

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nurpe/nomina-settlement/internal/format"
	"github.com/nurpe/nomina-settlement/internal/model"
)

func Render(s *model.Settlement) string {
	var b strings.Builder
	t := s.Totals

	fmt.Fprintf(&b, "Desprendible — %s\n", s.ContractLabel)
	fmt.Fprintf(&b, "Empleado: %s • ID: %s\n", orND(s.Employee.Name), s.Employee.Identification)
	fmt.Fprintf(&b, "Empresa: %s • NIT: %s\n", orND(s.Company.Name), s.Company.NIT)
	fmt.Fprintf(&b, "Período: %s\n", s.PeriodLabel)
	if s.BreakMinutes > 0 {
		fmt.Fprintf(&b, "Tiempo de descanso: %d minutos\n", s.BreakMinutes)
	}

	b.WriteString("\nConceptos salariales (Devengados)\n")
	salary := "No aplica"
	if t.PeriodSalary > 0 {
		salary = format.MoneyFloat(t.PeriodSalary)
	}
	fmt.Fprintf(&b, "Salario base%s: %s\n", frequencySuffix(s), salary)
	fmt.Fprintf(&b, "Auxilio transporte: %s\n", format.OrNotApplicable(t.TransportAllowance))

	if len(s.LineItems) > 0 {
		b.WriteString("\nDetalle horas / recargos\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Concepto\tHoras\tV.unit\tRecargo\tTotal")
		for _, item := range s.LineItems {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				Concept(item),
				format.Hours(item.Hours),
				unitRate(item.UnitRate),
				format.Percent(item.Percentage),
				format.Money(item.Amount),
			)
		}
		_ = w.Flush()
	} else {
		b.WriteString("No hay bloques de recargos/horas añadidos.\n")
	}
	fmt.Fprintf(&b, "Total devengado: %s\n", format.Money(t.GrossEarnings))

	if t.Benefits.Total > 0 {
		b.WriteString("\nPrestaciones Sociales\n")
		writePositive(&b, "Cesantías", t.Benefits.Severance)
		writePositive(&b, "Intereses sobre cesantías", t.Benefits.SeveranceInterest)
		writePositive(&b, "Prima de servicios", t.Benefits.ServiceBonus)
		writePositive(&b, "Vacaciones", t.Benefits.Vacation)
		fmt.Fprintf(&b, "Total prestaciones: %s\n", format.Money(t.Benefits.Total))
	}

	if t.EmployeeDeductions.Total > 0 || t.EmployerContributions.Applied {
		b.WriteString("\nSeguridad Social\n")
		if t.EmployeeDeductions.Total > 0 {
			b.WriteString("Descuentos empleado:\n")
			fmt.Fprintf(&b, "  • Salud (4%%): %s\n", format.Money(t.EmployeeDeductions.Health))
			fmt.Fprintf(&b, "  • Pensión (4%%): %s\n", format.Money(t.EmployeeDeductions.Pension))
			fmt.Fprintf(&b, "Total descuentos: %s\n", format.Money(t.EmployeeDeductions.Total))
		}
		if c := t.EmployerContributions; c.Applied {
			b.WriteString("Aportes empleador:\n")
			for _, line := range EmployerLines(c) {
				fmt.Fprintf(&b, "  • %s: %s\n", line.Label, format.Money(line.Amount))
			}
			fmt.Fprintf(&b, "Costo total para la empresa: %s\n", format.Money(c.TotalEmployerCost))
		}
	}

	b.WriteString("\nResumen Final\n")
	fmt.Fprintf(&b, "Neto a pagar al trabajador: %s\n", format.Money(t.NetPay))
	if t.Benefits.Total > 0 {
		fmt.Fprintf(&b, "Total con prestaciones: %s\n", format.Money(t.NetPayWithBenefits))
	}
	return b.String()
}

// Concept appends the source interval to the line-item label when there is one.
func Concept(item model.LineItem) string {
	if item.Source == nil {
		return item.Concept
	}
	return fmt.Sprintf("%s — %s→%s", item.Concept, item.Source.Start, item.Source.End)
}

type Line struct {
	Label  string
	Amount int64
}

// EmployerLines lists the non-zero employer contributions in display order.
func EmployerLines(c model.EmployerContributions) []Line {
	all := []Line{
		{"Salud (8.5%)", c.Health},
		{"Pensión (12%)", c.Pension},
		{"ARL", c.OccupationalRisk},
		{"Caja de Compensación (4%)", c.FamilyCompensationFund},
		{"Parafiscales (9%)", c.PayrollTax},
	}
	lines := make([]Line, 0, len(all))
	for _, l := range all {
		if l.Amount > 0 {
			lines = append(lines, l)
		}
	}
	return lines
}

func frequencySuffix(s *model.Settlement) string {
	if s.Contract != model.ContractIndefinite && s.Contract != model.ContractFixedTerm {
		return ""
	}
	return " (" + s.Frequency.Label() + ")"
}

func unitRate(v *float64) string {
	if v == nil || *v == 0 {
		return "-"
	}
	return format.MoneyFloat(*v)
}

func writePositive(b *strings.Builder, label string, v int64) {
	if v > 0 {
		fmt.Fprintf(b, "%s: %s\n", label, format.Money(v))
	}
}

func orND(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/D"
	}
	return v
}
