package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/nomina-settlement/internal/config"
	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/settlement"
)

type fakeHolidays struct {
	holidays []model.Holiday
	err      error
}

func (f fakeHolidays) ListHolidays(context.Context) ([]model.Holiday, error) {
	return f.holidays, f.err
}

type fakeGenerator struct {
	content []byte
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(*model.Settlement) ([]byte, error) {
	f.calls++
	return f.content, f.err
}

func defaultPayroll() config.PayrollConfig {
	return config.PayrollConfig{
		MinimumWage:        1300000,
		TransportAllowance: 162000,
		MonthlyHours:       220,
		OvertimePolicy:     "holiday",
	}
}

func newService(t *testing.T, excel, pdf DocumentGenerator) *SettlementService {
	t.Helper()
	source := fakeHolidays{holidays: []model.Holiday{
		{Date: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), Name: "Reyes Magos"},
	}}
	engine, err := BuildEngine(context.Background(), defaultPayroll(), source)
	require.NoError(t, err)
	return NewSettlementService(engine, excel, pdf)
}

func request() model.Request {
	return model.Request{
		Company:       model.Company{Name: "Nomina Contigo SAS", NIT: "900123456-7"},
		Employee:      model.Employee{Name: "Ana Pérez", Identification: "1020304050"},
		Contract:      model.ContractIndefinite,
		Period:        model.Period{Kind: model.PeriodSingleDay, Date: "2025-03-04"},
		Shift:         model.Shift{Start: "08:00", End: "18:00", BreakMinutes: 60},
		MonthlySalary: 1300000,
	}
}

func TestBuildEngineMergesHolidaySources(t *testing.T) {
	cfg := defaultPayroll()
	cfg.ExtraHolidays = []string{"2026-01-01"}
	source := fakeHolidays{holidays: []model.Holiday{{Date: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)}}}

	engine, err := BuildEngine(context.Background(), cfg, source)
	require.NoError(t, err)

	cal := engine.Calendar()
	assert.True(t, cal.Classify(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)).IsHoliday)
	assert.True(t, cal.Classify(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)).IsHoliday)
	assert.True(t, cal.Classify(time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)).IsHoliday)
	assert.False(t, cal.Classify(time.Date(2026, time.January, 13, 0, 0, 0, 0, time.UTC)).IsHoliday)
}

func TestBuildEngineWithoutSource(t *testing.T) {
	engine, err := BuildEngine(context.Background(), defaultPayroll(), nil)
	require.NoError(t, err)
	assert.Equal(t, 15, engine.Calendar().Len())
}

func TestBuildEngineErrors(t *testing.T) {
	_, err := BuildEngine(context.Background(), defaultPayroll(), fakeHolidays{err: errors.New("db down")})
	assert.ErrorContains(t, err, "load holidays")

	cfg := defaultPayroll()
	cfg.OvertimePolicy = "mixed"
	_, err = BuildEngine(context.Background(), cfg, nil)
	assert.Error(t, err)

	cfg = defaultPayroll()
	cfg.ExtraHolidays = []string{"2026-02-30"}
	_, err = BuildEngine(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestBuildEngineUsesConfiguredMinimumWage(t *testing.T) {
	cfg := defaultPayroll()
	cfg.MinimumWage = 500000

	engine, err := BuildEngine(context.Background(), cfg, nil)
	require.NoError(t, err)

	req := request()
	req.Options.TransportAllowance = true
	got, err := engine.Compute(req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Totals.TransportAllowance)
}

func TestCompute(t *testing.T) {
	svc := newService(t, nil, nil)

	got, err := svc.Compute(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, int64(1307386), got.Totals.GrossEarnings)
}

func TestComputeReturnsFieldError(t *testing.T) {
	svc := newService(t, nil, nil)
	req := request()
	req.Company.NIT = ""

	_, err := svc.Compute(context.Background(), req)
	var fieldErr *settlement.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "company.nit", fieldErr.Field)
	assert.ErrorIs(t, err, settlement.ErrMissingField)
}

func TestComputeHonoursCancelledContext(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Compute(ctx, request())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidate(t *testing.T) {
	svc := newService(t, nil, nil)
	assert.Empty(t, svc.Validate(request()))

	req := request()
	req.Company.Name = ""
	req.Employee.Name = ""
	errs := svc.Validate(req)
	require.Len(t, errs, 2)
	assert.Equal(t, "company.name", errs[0].Field)
	assert.Equal(t, "employee.name", errs[1].Field)
}

func TestClassify(t *testing.T) {
	svc := newService(t, nil, nil)

	got, err := svc.Classify("2025-07-20")
	require.NoError(t, err)
	assert.True(t, got.Day.IsSunday)
	assert.True(t, got.Day.IsHoliday)
	assert.Equal(t, model.DayTagSundayHoliday, got.DayTag)
	assert.Equal(t, 0.80, got.SundayRate)
	assert.Equal(t, 1.00, got.DayOvertimeRate)
	assert.Equal(t, 1.50, got.NightOvertimeRate)

	got, err = svc.Classify("2026-01-12")
	require.NoError(t, err)
	assert.True(t, got.Day.IsHoliday)
	assert.False(t, got.Day.IsSunday)

	got, err = svc.Classify("2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, model.DayTag(""), got.DayTag)
	assert.Equal(t, 0.75, got.SundayRate)
	assert.Equal(t, 0.25, got.DayOvertimeRate)
	assert.Equal(t, 0.75, got.NightOvertimeRate)
}

func TestClassifyRejectsBadDates(t *testing.T) {
	svc := newService(t, nil, nil)

	for _, raw := range []string{"", "2025-02-30", "04/03/2025"} {
		_, err := svc.Classify(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, raw)
	}
}

func TestRender(t *testing.T) {
	excel := &fakeGenerator{content: []byte("xlsx")}
	pdf := &fakeGenerator{content: []byte("%PDF-1.3")}
	svc := newService(t, excel, pdf)

	doc, err := svc.Render(context.Background(), request(), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "nomina-1020304050-ana-p-rez-20250304.txt", doc.FileName)
	assert.Equal(t, "text/plain; charset=utf-8", doc.ContentType)
	assert.Contains(t, string(doc.Content), "Neto a pagar al trabajador")

	doc, err = svc.Render(context.Background(), request(), FormatJSON)
	require.NoError(t, err)
	var decoded model.Settlement
	require.NoError(t, json.Unmarshal(doc.Content, &decoded))
	assert.Equal(t, int64(1307386), decoded.Totals.NetPay)

	doc, err = svc.Render(context.Background(), request(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "nomina-1020304050-ana-p-rez-20250304.pdf", doc.FileName)
	assert.Equal(t, 1, pdf.calls)

	doc, err = svc.Render(context.Background(), request(), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), doc.Content)
	assert.Equal(t, 1, excel.calls)
}

func TestRenderErrors(t *testing.T) {
	failing := &fakeGenerator{err: errors.New("boom")}
	svc := newService(t, failing, nil)

	_, err := svc.Render(context.Background(), request(), FormatXLSX)
	assert.ErrorIs(t, err, ErrRender)

	_, err = svc.Render(context.Background(), request(), FormatPDF)
	assert.ErrorIs(t, err, ErrRender)

	_, err = svc.Render(context.Background(), request(), Format("docx"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := request()
	bad.Contract = ""
	_, err = svc.Render(context.Background(), bad, FormatText)
	assert.ErrorIs(t, err, settlement.ErrMissingField)
	assert.Equal(t, 1, failing.calls)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Jose-Pe-a", sanitizeFileName("Jose Peña"))
	assert.Equal(t, "abc_1", sanitizeFileName("  abc_1 "))
	assert.Equal(t, "", sanitizeFileName("***"))
}

func TestBuildFileNameFallsBack(t *testing.T) {
	s := &model.Settlement{ReferenceDate: "2025-08-01"}
	assert.Equal(t, "nomina-empleado-20250801.xlsx", buildFileName(s, FormatXLSX))
}
