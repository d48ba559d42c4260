package model

type Settlement struct {
	Company         Company         `json:"company"`
	Employee        Employee        `json:"employee"`
	Contract        ContractType    `json:"contract_type"`
	ContractLabel   string          `json:"contract_label"`
	Frequency       PayFrequency    `json:"frequency,omitempty"`
	ApprenticeStage ApprenticeStage `json:"apprentice_stage,omitempty"`
	Period          Period          `json:"period"`
	PeriodLabel     string          `json:"period_label"`
	ReferenceDate   string          `json:"reference_date"`
	Day             DayClass        `json:"day"`
	BreakMinutes    int             `json:"break_minutes,omitempty"`
	UnitHourRate    float64         `json:"unit_hour_rate"`
	LineItems       []LineItem      `json:"line_items"`
	Totals          Totals          `json:"totals"`
}

// LineItem is one priced event. Hours, UnitRate and Percentage are nil when
// they do not apply to the concept.
type LineItem struct {
	Concept    string        `json:"concept"`
	Kind       SurchargeKind `json:"kind,omitempty"`
	Hours      *float64      `json:"hours,omitempty"`
	UnitRate   *float64      `json:"unit_rate,omitempty"`
	Percentage *float64      `json:"percentage,omitempty"`
	Amount     int64         `json:"amount"`
	Source     *BlockSource  `json:"source,omitempty"`
}

type BlockSource struct {
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Kind      SurchargeKind `json:"kind"`
	Automatic bool          `json:"automatic"`
	DayTag    DayTag        `json:"day_tag,omitempty"`
}

type Totals struct {
	MonthlySalary         float64               `json:"monthly_salary"`
	PeriodSalary          float64               `json:"period_salary"`
	TransportAllowance    int64                 `json:"transport_allowance"`
	BaseEarnings          float64               `json:"base_earnings"`
	TotalSurcharges       int64                 `json:"total_surcharges"`
	GrossEarnings         int64                 `json:"gross_earnings"`
	Benefits              Benefits              `json:"benefits"`
	EmployeeDeductions    EmployeeDeductions    `json:"employee_deductions"`
	EmployerContributions EmployerContributions `json:"employer_contributions"`
	NetPay                int64                 `json:"net_pay"`
	NetPayWithBenefits    int64                 `json:"net_pay_with_benefits"`
}

type Benefits struct {
	Severance         int64 `json:"severance"`
	SeveranceInterest int64 `json:"severance_interest"`
	ServiceBonus      int64 `json:"service_bonus"`
	Vacation          int64 `json:"vacation"`
	Total             int64 `json:"total"`
}

type EmployeeDeductions struct {
	Health  int64 `json:"health"`
	Pension int64 `json:"pension"`
	Total   int64 `json:"total"`
}

// EmployerContributions is zero-valued with Applied false when the social
// security block was not requested.
type EmployerContributions struct {
	Applied                bool  `json:"applied"`
	Health                 int64 `json:"health"`
	Pension                int64 `json:"pension"`
	OccupationalRisk       int64 `json:"occupational_risk"`
	FamilyCompensationFund int64 `json:"family_compensation_fund"`
	PayrollTax             int64 `json:"payroll_tax"`
	TotalEmployerCost      int64 `json:"total_employer_cost"`
}
