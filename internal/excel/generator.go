package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/receipt"
)

const (
	SummarySheet = "Resumen"
	DetailSheet  = "Detalle"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(s *model.Settlement) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("settlement is nil")
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}
	g.writeSummary(file, SummarySheet, s)

	if _, err := file.NewSheet(DetailSheet); err != nil {
		return nil, err
	}
	if err := g.writeDetail(file, DetailSheet, s); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, s *model.Settlement) {
	t := s.Totals
	row := 0
	add := func(label string, value interface{}) {
		row++
		_ = file.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
		_ = file.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
	}

	add("Empresa", s.Company.Name)
	add("NIT", s.Company.NIT)
	add("Empleado", s.Employee.Name)
	add("Identificación", s.Employee.Identification)
	add("Tipo de contrato", s.ContractLabel)
	if s.Frequency != "" {
		add("Frecuencia", s.Frequency.Label())
	}
	add("Período", s.PeriodLabel)
	add("Fecha de referencia", s.ReferenceDate)
	add("Valor hora", s.UnitHourRate)
	row++
	add("Salario base", t.PeriodSalary)
	add("Auxilio de transporte", t.TransportAllowance)
	add("Total recargos", t.TotalSurcharges)
	add("Total devengado", t.GrossEarnings)
	add("Cesantías", t.Benefits.Severance)
	add("Intereses sobre cesantías", t.Benefits.SeveranceInterest)
	add("Prima de servicios", t.Benefits.ServiceBonus)
	add("Vacaciones", t.Benefits.Vacation)
	add("Total prestaciones", t.Benefits.Total)
	add("Salud empleado", t.EmployeeDeductions.Health)
	add("Pensión empleado", t.EmployeeDeductions.Pension)
	add("Total descuentos", t.EmployeeDeductions.Total)
	if t.EmployerContributions.Applied {
		for _, line := range receipt.EmployerLines(t.EmployerContributions) {
			add("Empleador: "+line.Label, line.Amount)
		}
		add("Costo total para la empresa", t.EmployerContributions.TotalEmployerCost)
	}
	add("Neto a pagar", t.NetPay)
	add("Total con prestaciones", t.NetPayWithBenefits)

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 24)
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, s *model.Settlement) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Concepto", "Tipo", "Inicio", "Fin", "Automático", "Horas", "Valor unitario", "Recargo", "Total"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, item := range s.LineItems {
		row := i + 2
		values := []interface{}{
			item.Concept,
			string(item.Kind),
			"",
			"",
			"",
			optional(item.Hours),
			optional(item.UnitRate),
			optional(item.Percentage),
			item.Amount,
		}
		if item.Source != nil {
			values[2] = item.Source.Start
			values[3] = item.Source.End
			values[4] = yesNo(item.Source.Automatic)
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			set(cell, value)
		}
	}

	totalRow := len(s.LineItems) + 2
	set(fmt.Sprintf("A%d", totalRow), "Total recargos")
	set(fmt.Sprintf("I%d", totalRow), s.Totals.TotalSurcharges)

	_ = file.SetColWidth(sheet, "A", "A", 45)
	_ = file.SetColWidth(sheet, "B", "I", 14)
	return nil
}

func optional(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
