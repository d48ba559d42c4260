package model

type ContractType string

const (
	ContractIndefinite     ContractType = "indefinite"
	ContractFixedTerm      ContractType = "fixed_term"
	ContractWorkOrLabor    ContractType = "work_or_labor"
	ContractOccasional     ContractType = "occasional"
	ContractApprenticeship ContractType = "apprenticeship"
	ContractHourly         ContractType = "hourly"
)

var contractLabels = map[ContractType]string{
	ContractIndefinite:     "Indefinido",
	ContractFixedTerm:      "Fijo",
	ContractWorkOrLabor:    "Obra labor",
	ContractOccasional:     "Ocasional",
	ContractApprenticeship: "Aprendizaje",
	ContractHourly:         "Por horas",
}

func (c ContractType) Valid() bool {
	_, ok := contractLabels[c]
	return ok
}

func (c ContractType) Label() string {
	if label, ok := contractLabels[c]; ok {
		return label
	}
	return string(c)
}

// Salaried reports whether the contract is paid from a declared monthly
// salary that may be settled monthly or biweekly.
func (c ContractType) Salaried() bool {
	switch c {
	case ContractIndefinite, ContractFixedTerm, ContractWorkOrLabor:
		return true
	default:
		return false
	}
}

type PayPeriodKind string

const (
	PeriodSingleDay     PayPeriodKind = "single_day"
	PeriodDateRange     PayPeriodKind = "date_range"
	PeriodCalendarMonth PayPeriodKind = "calendar_month"
)

func (k PayPeriodKind) Valid() bool {
	switch k {
	case PeriodSingleDay, PeriodDateRange, PeriodCalendarMonth:
		return true
	default:
		return false
	}
}

type PayFrequency string

const (
	FrequencyMonthly  PayFrequency = "monthly"
	FrequencyBiweekly PayFrequency = "biweekly"
)

func (f PayFrequency) Label() string {
	if f == FrequencyBiweekly {
		return "Quincenal"
	}
	return "Mensual"
}

type ApprenticeStage string

const (
	StageStudy      ApprenticeStage = "study"
	StageProductive ApprenticeStage = "productive"
)

func (s ApprenticeStage) Valid() bool {
	return s == StageStudy || s == StageProductive
}
