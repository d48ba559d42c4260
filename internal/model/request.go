package model

// Request is the structured input of one settlement computation. Dates are
// ISO "YYYY-MM-DD" strings, months "YYYY-MM" and clock times "HH:MM", exactly as
// the caller captured them; Validate is the only place that interprets them.
type Request struct {
	Company         Company         `json:"company" yaml:"company"`
	Employee        Employee        `json:"employee" yaml:"employee"`
	Contract        ContractType    `json:"contract_type" yaml:"contract_type"`
	Frequency       PayFrequency    `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	ApprenticeStage ApprenticeStage `json:"apprentice_stage,omitempty" yaml:"apprentice_stage,omitempty"`
	Period          Period          `json:"period" yaml:"period"`
	Shift           Shift           `json:"shift" yaml:"shift"`
	MonthlySalary   float64         `json:"monthly_salary,omitempty" yaml:"monthly_salary,omitempty"`
	HourlyRate      float64         `json:"hourly_rate,omitempty" yaml:"hourly_rate,omitempty"`
	HoursWorked     float64         `json:"hours_worked,omitempty" yaml:"hours_worked,omitempty"`
	Blocks          []BlockInput    `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Options         Options         `json:"options" yaml:"options"`
}

type Company struct {
	Name string `json:"name" yaml:"name"`
	NIT  string `json:"nit" yaml:"nit"`
}

type Employee struct {
	Name           string `json:"name" yaml:"name"`
	Identification string `json:"identification" yaml:"identification"`
}

type Period struct {
	Kind  PayPeriodKind `json:"kind" yaml:"kind"`
	Date  string        `json:"date,omitempty" yaml:"date,omitempty"`
	Start string        `json:"start,omitempty" yaml:"start,omitempty"`
	End   string        `json:"end,omitempty" yaml:"end,omitempty"`
	Month string        `json:"month,omitempty" yaml:"month,omitempty"`
}

// Shift is the worked schedule of a single-day period.
type Shift struct {
	Start        string `json:"start,omitempty" yaml:"start,omitempty"`
	End          string `json:"end,omitempty" yaml:"end,omitempty"`
	BreakMinutes int    `json:"break_minutes,omitempty" yaml:"break_minutes,omitempty"`
}

type BlockInput struct {
	Kind  SurchargeKind `json:"kind" yaml:"kind"`
	Start string        `json:"start" yaml:"start"`
	End   string        `json:"end" yaml:"end"`
}

// Options lists every opt-in the caller can toggle.
type Options struct {
	TransportAllowance bool `json:"transport_allowance" yaml:"transport_allowance"`
	Severance          bool `json:"severance" yaml:"severance"`
	SeveranceInterest  bool `json:"severance_interest" yaml:"severance_interest"`
	ServiceBonus       bool `json:"service_bonus" yaml:"service_bonus"`
	Vacation           bool `json:"vacation" yaml:"vacation"`
	SocialSecurity     bool `json:"social_security" yaml:"social_security"`
}
