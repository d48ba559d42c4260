package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/nomina-settlement/internal/model"
)

func TestGenerate(t *testing.T) {
	hours, pct := 4.0, 0.35
	s := &model.Settlement{
		Company:       model.Company{Name: "Acme SAS", NIT: "900"},
		Employee:      model.Employee{Name: "Ana", Identification: "123"},
		ContractLabel: "Indefinido",
		Frequency:     model.FrequencyMonthly,
		PeriodLabel:   "Día: 2025-03-04",
		ReferenceDate: "2025-03-04",
		LineItems: []model.LineItem{
			{
				Concept:    "Recargo nocturno",
				Kind:       model.KindNightDifferential,
				Hours:      &hours,
				Percentage: &pct,
				Amount:     7977,
				Source:     &model.BlockSource{Start: "22:00", End: "02:00", Kind: model.KindNightDifferential},
			},
			{Concept: "Horas trabajadas", Amount: 320000},
		},
		Totals: model.Totals{TotalSurcharges: 327977, GrossEarnings: 1627977, NetPay: 1627977, NetPayWithBenefits: 1627977},
	}

	content, err := NewGenerator().Generate(s)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{SummarySheet, DetailSheet}, file.GetSheetList())

	name, err := file.GetCellValue(SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	rows, err := file.GetRows(DetailSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Concepto", rows[0][0])
	assert.Equal(t, "Recargo nocturno", rows[1][0])
	assert.Equal(t, "22:00", rows[1][2])
	assert.Equal(t, "No", rows[1][4])
	assert.Equal(t, "7977", rows[1][8])
	assert.Equal(t, "Horas trabajadas", rows[2][0])
	assert.Equal(t, "", rows[2][2])
	assert.Equal(t, "Total recargos", rows[3][0])
	assert.Equal(t, "327977", rows[3][8])
}

func TestGenerateRejectsNil(t *testing.T) {
	_, err := NewGenerator().Generate(nil)
	assert.Error(t, err)
}
