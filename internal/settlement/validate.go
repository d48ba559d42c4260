package settlement

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nurpe/nomina-settlement/internal/model"
)

const (
	isoDate  = "2006-01-02"
	isoMonth = "2006-01"

	// Upper bounds keep every priced amount well inside int64 pesos.
	maxAmount      = 1e12
	maxHoursWorked = 744
)

// parsedRequest holds the interpreted values of a request that passed validation.
type parsedRequest struct {
	periodKind    model.PayPeriodKind
	frequency     model.PayFrequency
	stage         model.ApprenticeStage
	referenceDate time.Time
	// classifyDay is false for calendar months, which have no single day to
	// classify as Sunday or holiday.
	classifyDay bool
	shift       *model.WorkedShift
	blocks      []model.TimeBlock
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) add(field string, kind ErrorKind, format string, args ...any) {
	v.errs = append(v.errs, &FieldError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.add(field, KindMissingField, "%s is required", field)
		return false
	}
	return true
}

func (v *validator) date(field, value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(field, KindInvalidDate, "%s is required", field)
		return time.Time{}, false
	}
	d, err := time.Parse(isoDate, value)
	if err != nil {
		v.add(field, KindInvalidDate, "%s must be a YYYY-MM-DD date", field)
		return time.Time{}, false
	}
	return d, true
}

func (v *validator) clock(field, value string) (model.ClockTime, bool) {
	if !v.required(field, value) {
		return 0, false
	}
	c, err := model.ParseClock(value)
	if err != nil {
		v.add(field, KindInvalidTime, "%s must be an HH:MM time", field)
		return 0, false
	}
	return c, true
}

// positive accepts finite values in (0, limit].
func (v *validator) positive(field string, value, limit float64) {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0) || value <= 0:
		v.add(field, KindInvalidNumber, "%s must be a number greater than 0", field)
	case value > limit:
		v.add(field, KindInvalidNumber, "%s must not exceed %.0f", field, limit)
	}
}

// Validate checks req in a fixed order: identity fields, contract, period
// fields for the period kind, pay fields, then declared blocks. It never stops
// early; Compute refuses the request on the first entry.
func Validate(req model.Request) ValidationErrors {
	_, errs := parse(req)
	return errs
}

func parse(req model.Request) (parsedRequest, ValidationErrors) {
	v := &validator{}
	p := parsedRequest{
		periodKind: req.Period.Kind,
		frequency:  req.Frequency,
		stage:      req.ApprenticeStage,
	}

	v.required("company.name", req.Company.Name)
	v.required("company.nit", req.Company.NIT)
	v.required("employee.name", req.Employee.Name)
	v.required("employee.identification", req.Employee.Identification)

	contractOK := false
	if v.required("contract_type", string(req.Contract)) {
		if req.Contract.Valid() {
			contractOK = true
		} else {
			v.add("contract_type", KindInvalidChoice, "contract_type %q is not supported", req.Contract)
		}
	}

	if p.periodKind == "" {
		p.periodKind = model.PeriodSingleDay
	}
	switch p.periodKind {
	case model.PeriodSingleDay:
		if d, ok := v.date("period.date", req.Period.Date); ok {
			p.referenceDate = d
			p.classifyDay = true
		}
		if contractOK && req.Contract.Salaried() {
			start, startOK := v.clock("shift.start", req.Shift.Start)
			end, endOK := v.clock("shift.end", req.Shift.End)
			if req.Shift.BreakMinutes < 0 {
				v.add("shift.break_minutes", KindInvalidNumber, "shift.break_minutes must not be negative")
			}
			if startOK && endOK && req.Shift.BreakMinutes >= 0 {
				p.shift = &model.WorkedShift{
					Date:         p.referenceDate,
					Start:        start,
					End:          end,
					BreakMinutes: req.Shift.BreakMinutes,
				}
			}
		}
	case model.PeriodDateRange:
		start, startOK := v.date("period.start", req.Period.Start)
		end, endOK := v.date("period.end", req.Period.End)
		if startOK && endOK && end.Before(start) {
			v.add("period.end", KindInvalidDate, "period.end must not be before period.start")
		}
		if startOK {
			p.referenceDate = start
			p.classifyDay = true
		}
	case model.PeriodCalendarMonth:
		if v.required("period.month", req.Period.Month) {
			m, err := time.Parse(isoMonth, strings.TrimSpace(req.Period.Month))
			if err != nil {
				v.add("period.month", KindInvalidDate, "period.month must be a YYYY-MM month")
			} else {
				p.referenceDate = m
			}
		}
	default:
		v.add("period.kind", KindInvalidChoice, "period.kind %q is not supported", req.Period.Kind)
	}

	if contractOK {
		switch {
		case req.Contract == model.ContractHourly:
			v.positive("hourly_rate", req.HourlyRate, maxAmount)
			v.positive("hours_worked", req.HoursWorked, maxHoursWorked)
		case req.Contract == model.ContractApprenticeship:
			if p.stage == "" {
				p.stage = model.StageStudy
			}
			if !p.stage.Valid() {
				v.add("apprentice_stage", KindInvalidChoice, "apprentice_stage %q is not supported", req.ApprenticeStage)
			}
		default:
			v.positive("monthly_salary", req.MonthlySalary, maxAmount)
		}

		if req.Contract.Salaried() {
			switch p.frequency {
			case "":
				p.frequency = model.FrequencyMonthly
			case model.FrequencyMonthly, model.FrequencyBiweekly:
			default:
				v.add("frequency", KindInvalidChoice, "frequency %q is not supported", req.Frequency)
			}
		}
	}

	for i, b := range req.Blocks {
		prefix := fmt.Sprintf("blocks[%d]", i)
		if !b.Kind.Valid() {
			v.add(prefix+".kind", KindInvalidChoice, "%s.kind %q is not supported", prefix, b.Kind)
		}
		start, startOK := v.clock(prefix+".start", b.Start)
		end, endOK := v.clock(prefix+".end", b.End)
		if b.Kind.Valid() && startOK && endOK {
			p.blocks = append(p.blocks, model.TimeBlock{Start: start, End: end, Kind: b.Kind})
		}
	}

	return p, v.errs
}
