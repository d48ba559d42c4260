package settlement

import (
	"fmt"
	"math"

	"github.com/nurpe/nomina-settlement/internal/calendar"
	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/rates"
	"github.com/nurpe/nomina-settlement/internal/timeblock"
)

const (
	DefaultMinimumWage        = 1300000
	DefaultTransportAllowance = 162000
	DefaultMonthlyHours       = 220

	apprenticeStudyFactor = 0.75

	severanceRate         = 0.0833
	severanceInterestRate = 0.01
	serviceBonusRate      = 0.0833
	vacationRate          = 0.0417
)

// Params are the fixed amounts the engine prices against.
type Params struct {
	MinimumWage        float64
	TransportAllowance float64
	MonthlyHours       float64
}

func DefaultParams() Params {
	return Params{
		MinimumWage:        DefaultMinimumWage,
		TransportAllowance: DefaultTransportAllowance,
		MonthlyHours:       DefaultMonthlyHours,
	}
}

type contributionRates struct {
	employeeHealth   float64
	employeePension  float64
	employerHealth   float64
	employerPension  float64
	occupationalRisk float64
	familyFund       float64
	payrollTax       float64
}

var (
	standardContributions = contributionRates{
		employeeHealth:   0.04,
		employeePension:  0.04,
		employerHealth:   0.085,
		employerPension:  0.12,
		occupationalRisk: 0.00522,
		familyFund:       0.04,
		payrollTax:       0.09,
	}
	apprenticeContributions = contributionRates{
		employerHealth:   0.085,
		occupationalRisk: 0.00522,
	}
	hourlyContributions = contributionRates{
		employeeHealth:   0.04,
		employeePension:  0.04,
		employerHealth:   0.085,
		employerPension:  0.12,
		occupationalRisk: 0.00522,
	}
)

// Engine turns a request into a priced settlement. It holds only immutable
// configuration, so one Engine serves any number of concurrent callers.
type Engine struct {
	params   Params
	calendar *calendar.Calendar
	rates    *rates.Table
}

func NewEngine(params Params, cal *calendar.Calendar, table *rates.Table) *Engine {
	if params.MonthlyHours <= 0 {
		params.MonthlyHours = DefaultMonthlyHours
	}
	return &Engine{params: params, calendar: cal, rates: table}
}

func (e *Engine) Calendar() *calendar.Calendar {
	return e.calendar
}

func (e *Engine) Rates() *rates.Table {
	return e.rates
}

// Compute validates req and prices it. Every sub-amount is rounded to whole
// pesos on its own before it is summed.
func (e *Engine) Compute(req model.Request) (*model.Settlement, error) {
	p, errs := parse(req)
	if len(errs) > 0 {
		return nil, errs.First()
	}

	var day model.DayClass
	if p.classifyDay {
		day = e.calendar.Classify(p.referenceDate)
	}
	sundayOrHoliday := day.SundayOrHoliday()

	monthly, period := e.salaries(req, p)
	unitRate := 0.0
	if monthly > 0 {
		unitRate = monthly / e.params.MonthlyHours
	}
	allowance := e.transportAllowance(req, p, monthly)

	items := make([]model.LineItem, 0, len(p.blocks)+3)
	if p.periodKind == model.PeriodSingleDay && req.Contract.Salaried() && p.shift != nil {
		if det := timeblock.DetectSundayHoliday(*p.shift, day); det != nil {
			pct := e.rates.Rate(det.Block.Kind, p.referenceDate, sundayOrHoliday)
			items = append(items, model.LineItem{
				Concept:    sundayConcept(det.Tag),
				Kind:       det.Block.Kind,
				Hours:      ptr(roundHours(det.Hours)),
				UnitRate:   ptr(unitRate),
				Percentage: ptr(pct),
				Amount:     roundPesos(det.Hours * unitRate * pct),
				Source:     source(det.Block, true, det.Tag),
			})
		}
		if det := timeblock.DetectOvertime(*p.shift); det != nil {
			pct := e.rates.Rate(det.Block.Kind, p.referenceDate, sundayOrHoliday)
			items = append(items, model.LineItem{
				Concept:    fmt.Sprintf("Hora extra automática (%s)", det.Block.Kind.Label()),
				Kind:       det.Block.Kind,
				Hours:      ptr(roundHours(det.Hours)),
				UnitRate:   ptr(unitRate),
				Percentage: ptr(pct),
				Amount:     roundPesos(det.Hours * unitRate * (1 + pct)),
				Source:     source(det.Block, true, ""),
			})
		}
	}

	blockRate := unitRate
	if req.Contract == model.ContractHourly {
		blockRate = req.HourlyRate
	}
	for _, block := range p.blocks {
		hours := timeblock.Hours(block.Start, block.End)
		pct := e.rates.Rate(block.Kind, p.referenceDate, sundayOrHoliday)
		items = append(items, model.LineItem{
			Concept:    block.Kind.Label(),
			Kind:       block.Kind,
			Hours:      ptr(hours),
			UnitRate:   ptr(blockRate),
			Percentage: ptr(pct),
			Amount:     roundPesos(hours * blockRate * (1 + pct)),
			Source:     source(block, false, ""),
		})
	}

	if req.Contract == model.ContractHourly {
		items = append(items, model.LineItem{
			Concept:  "Horas trabajadas",
			Hours:    ptr(req.HoursWorked),
			UnitRate: ptr(req.HourlyRate),
			Amount:   roundPesos(req.HoursWorked * req.HourlyRate),
		})
	}

	var surcharges int64
	for _, item := range items {
		surcharges += item.Amount
	}

	base := period + float64(allowance)
	if req.Contract == model.ContractOccasional {
		base = period
	}
	gross := roundPesos(base + float64(surcharges))

	benefits := e.benefits(req, p, monthly)
	deductions, contributions := e.socialSecurity(req, p, gross)
	net := gross - deductions.Total

	return &model.Settlement{
		Company:         req.Company,
		Employee:        req.Employee,
		Contract:        req.Contract,
		ContractLabel:   req.Contract.Label(),
		Frequency:       frequency(req, p),
		ApprenticeStage: apprenticeStage(req, p),
		Period:          req.Period,
		PeriodLabel:     periodLabel(p.periodKind, req.Period),
		ReferenceDate:   calendar.ISO(p.referenceDate),
		Day:             day,
		BreakMinutes:    breakMinutes(p),
		UnitHourRate:    unitRate,
		LineItems:       items,
		Totals: model.Totals{
			MonthlySalary:         monthly,
			PeriodSalary:          period,
			TransportAllowance:    allowance,
			BaseEarnings:          base,
			TotalSurcharges:       surcharges,
			GrossEarnings:         gross,
			Benefits:              benefits,
			EmployeeDeductions:    deductions,
			EmployerContributions: contributions,
			NetPay:                net,
			NetPayWithBenefits:    net + benefits.Total,
		},
	}, nil
}

func (e *Engine) salaries(req model.Request, p parsedRequest) (monthly, period float64) {
	switch req.Contract {
	case model.ContractOccasional:
		return req.MonthlySalary, req.MonthlySalary
	case model.ContractApprenticeship:
		monthly = e.params.MinimumWage
		if p.stage == model.StageStudy {
			monthly = e.params.MinimumWage * apprenticeStudyFactor
		}
		return monthly, monthly
	case model.ContractHourly:
		return 0, 0
	default:
		if p.frequency == model.FrequencyBiweekly {
			return req.MonthlySalary, req.MonthlySalary / 2
		}
		return req.MonthlySalary, req.MonthlySalary
	}
}

func (e *Engine) transportAllowance(req model.Request, p parsedRequest, monthly float64) int64 {
	if !req.Options.TransportAllowance {
		return 0
	}
	if req.Contract == model.ContractApprenticeship && p.stage != model.StageProductive {
		return 0
	}
	if monthly <= 0 || monthly > 2*e.params.MinimumWage {
		return 0
	}
	return roundPesos(e.params.TransportAllowance)
}

func (e *Engine) benefits(req model.Request, p parsedRequest, monthly float64) model.Benefits {
	eligible := req.Contract.Salaried() || req.Contract == model.ContractOccasional ||
		(req.Contract == model.ContractApprenticeship && p.stage == model.StageProductive)
	if !eligible {
		return model.Benefits{}
	}

	var b model.Benefits
	if req.Options.Severance {
		b.Severance = roundPesos(monthly * severanceRate)
	}
	if req.Options.SeveranceInterest {
		b.SeveranceInterest = roundPesos(float64(b.Severance) * severanceInterestRate)
	}
	if req.Options.ServiceBonus {
		b.ServiceBonus = roundPesos(monthly * serviceBonusRate)
	}
	if req.Options.Vacation {
		b.Vacation = roundPesos(monthly * vacationRate)
	}
	b.Total = b.Severance + b.SeveranceInterest + b.ServiceBonus + b.Vacation
	return b
}

func (e *Engine) socialSecurity(req model.Request, p parsedRequest, gross int64) (model.EmployeeDeductions, model.EmployerContributions) {
	if !req.Options.SocialSecurity {
		return model.EmployeeDeductions{}, model.EmployerContributions{}
	}

	var r contributionRates
	switch {
	case req.Contract.Salaried(), req.Contract == model.ContractOccasional:
		r = standardContributions
	case req.Contract == model.ContractApprenticeship && p.stage == model.StageProductive:
		r = apprenticeContributions
	case req.Contract == model.ContractHourly:
		r = hourlyContributions
	default:
		return model.EmployeeDeductions{}, model.EmployerContributions{}
	}

	g := float64(gross)
	d := model.EmployeeDeductions{
		Health:  roundPesos(g * r.employeeHealth),
		Pension: roundPesos(g * r.employeePension),
	}
	d.Total = d.Health + d.Pension

	c := model.EmployerContributions{
		Applied:                true,
		Health:                 roundPesos(g * r.employerHealth),
		Pension:                roundPesos(g * r.employerPension),
		OccupationalRisk:       roundPesos(g * r.occupationalRisk),
		FamilyCompensationFund: roundPesos(g * r.familyFund),
		PayrollTax:             roundPesos(g * r.payrollTax),
	}
	c.TotalEmployerCost = gross + c.Health + c.Pension + c.OccupationalRisk + c.FamilyCompensationFund + c.PayrollTax
	return d, c
}

// roundPesos rounds half up, matching how every amount on the pay stub has
// always been rounded.
func roundPesos(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// roundHours is for display only; amounts are priced on the unrounded hours.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}

func source(block model.TimeBlock, automatic bool, tag model.DayTag) *model.BlockSource {
	return &model.BlockSource{
		Start:     block.Start.String(),
		End:       block.End.String(),
		Kind:      block.Kind,
		Automatic: automatic,
		DayTag:    tag,
	}
}

func sundayConcept(tag model.DayTag) string {
	switch tag {
	case model.DayTagSundayHoliday:
		return "Recargo dominical + festivo (horas ordinarias)"
	case model.DayTagSunday:
		return "Recargo dominical (horas ordinarias)"
	default:
		return "Recargo festivo (horas ordinarias)"
	}
}

func periodLabel(kind model.PayPeriodKind, period model.Period) string {
	switch kind {
	case model.PeriodDateRange:
		return fmt.Sprintf("Rango: %s a %s", dash(period.Start), dash(period.End))
	case model.PeriodCalendarMonth:
		return fmt.Sprintf("Mes: %s", dash(period.Month))
	default:
		return fmt.Sprintf("Día: %s", dash(period.Date))
	}
}

func apprenticeStage(req model.Request, p parsedRequest) model.ApprenticeStage {
	if req.Contract != model.ContractApprenticeship {
		return ""
	}
	return p.stage
}

func frequency(req model.Request, p parsedRequest) model.PayFrequency {
	if !req.Contract.Salaried() {
		return ""
	}
	return p.frequency
}

func breakMinutes(p parsedRequest) int {
	if p.shift == nil {
		return 0
	}
	return p.shift.BreakMinutes
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
