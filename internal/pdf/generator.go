package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/nomina-settlement/internal/format"
	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/receipt"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the pay stub on a single A4 portrait page. Core fonts are
// cp1252, so text goes through the unicode translator.
func (g *Generator) Generate(s *model.Settlement) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("settlement is nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	t := s.Totals

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, tr("Desprendible de nómina - "+s.ContractLabel), "", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, tr(s.PeriodLabel), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	section(pdf, tr, "Datos")
	lines := []string{
		fmt.Sprintf("Empleado: %s", safeValue(s.Employee.Name)),
		fmt.Sprintf("Identificación: %s", safeValue(s.Employee.Identification)),
		fmt.Sprintf("Empresa: %s", safeValue(s.Company.Name)),
		fmt.Sprintf("NIT: %s", safeValue(s.Company.NIT)),
		fmt.Sprintf("Fecha de referencia: %s", format.LongDate(s.ReferenceDate)),
	}
	if s.BreakMinutes > 0 {
		lines = append(lines, fmt.Sprintf("Tiempo de descanso: %d minutos", s.BreakMinutes))
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	pdf.Ln(2)

	section(pdf, tr, "Devengados")
	salary := "No aplica"
	if t.PeriodSalary > 0 {
		salary = format.MoneyFloat(t.PeriodSalary)
	}
	amountLine(pdf, tr, "Salario base", salary)
	amountLine(pdf, tr, "Auxilio de transporte", format.OrNotApplicable(t.TransportAllowance))
	pdf.Ln(2)

	if len(s.LineItems) > 0 {
		widths := []float64{80, 20, 30, 20, 30}
		drawTableRow(pdf, tr, []string{"Concepto", "Horas", "V. unitario", "Recargo", "Total"}, widths, true)
		for _, item := range s.LineItems {
			unit := "-"
			if item.UnitRate != nil && *item.UnitRate > 0 {
				unit = format.MoneyFloat(*item.UnitRate)
			}
			drawTableRow(pdf, tr, []string{
				concept(item),
				format.Hours(item.Hours),
				unit,
				format.Percent(item.Percentage),
				format.Money(item.Amount),
			}, widths, false)
		}
		pdf.Ln(2)
	}
	amountLine(pdf, tr, "Total recargos", format.Money(t.TotalSurcharges))
	amountLine(pdf, tr, "Total devengado", format.Money(t.GrossEarnings))
	pdf.Ln(2)

	if t.Benefits.Total > 0 {
		section(pdf, tr, "Prestaciones sociales")
		amountLine(pdf, tr, "Cesantías", format.Money(t.Benefits.Severance))
		amountLine(pdf, tr, "Intereses sobre cesantías", format.Money(t.Benefits.SeveranceInterest))
		amountLine(pdf, tr, "Prima de servicios", format.Money(t.Benefits.ServiceBonus))
		amountLine(pdf, tr, "Vacaciones", format.Money(t.Benefits.Vacation))
		amountLine(pdf, tr, "Total prestaciones", format.Money(t.Benefits.Total))
		pdf.Ln(2)
	}

	if t.EmployeeDeductions.Total > 0 || t.EmployerContributions.Applied {
		section(pdf, tr, "Seguridad social")
		if t.EmployeeDeductions.Total > 0 {
			amountLine(pdf, tr, "Salud empleado (4%)", format.Money(t.EmployeeDeductions.Health))
			amountLine(pdf, tr, "Pensión empleado (4%)", format.Money(t.EmployeeDeductions.Pension))
			amountLine(pdf, tr, "Total descuentos", format.Money(t.EmployeeDeductions.Total))
		}
		if c := t.EmployerContributions; c.Applied {
			for _, line := range receipt.EmployerLines(c) {
				amountLine(pdf, tr, "Empleador - "+line.Label, format.Money(line.Amount))
			}
			amountLine(pdf, tr, "Costo total para la empresa", format.Money(c.TotalEmployerCost))
		}
		pdf.Ln(2)
	}

	section(pdf, tr, "Resumen final")
	pdf.SetFont(fontName, "B", 11)
	amountLine(pdf, tr, "Neto a pagar", format.Money(t.NetPay))
	if t.Benefits.Total > 0 {
		amountLine(pdf, tr, "Total con prestaciones", format.Money(t.NetPayWithBenefits))
	}

	pdf.Ln(10)
	signatureBlock(pdf, tr, "Empleador", s.Company.Name)
	signatureBlock(pdf, tr, "Trabajador", s.Employee.Name)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
}

func amountLine(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(120, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(value), "", 1, "R", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontName, "", 10)
}

func signatureBlock(pdf *gofpdf.Fpdf, tr func(string) string, label, name string) {
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name))), "", 1, "L", false, 0, "")
}

// concept avoids the arrow used by the text receipt; it has no cp1252 glyph.
func concept(item model.LineItem) string {
	if item.Source == nil {
		return item.Concept
	}
	return fmt.Sprintf("%s %s-%s", item.Concept, item.Source.Start, item.Source.End)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/D"
	}
	return value
}
