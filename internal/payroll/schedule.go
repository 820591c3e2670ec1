package payroll

import "math"

// Schedule holds the statutory constants a Calculator needs. Tables are
// versioned as a whole so a new year's values never touch calculation code.
type Schedule struct {
	Name string

	// SocialSecurity is the INSS table, evaluated cumulatively.
	SocialSecurity Table
	// IncomeTax is the IRRF table, evaluated flat-rate minus deduction.
	IncomeTax Table
	// DependentDeduction is subtracted from the IRRF base per dependent.
	DependentDeduction float64

	TransportCapRate   float64
	SeveranceFundRate  float64
	VacationFactor     float64
	MonthlyHours       float64
	NoticeTenureMonths int
}

// Schedule2023 returns the INSS/IRRF schedule in force from May 2023. Each
// call builds new tables, so callers may modify the result freely.
func Schedule2023() Schedule {
	return Schedule{
		Name: "2023",
		SocialSecurity: Table{
			{UpperBound: 1320.00, Rate: 0.075},
			{UpperBound: 2571.29, Rate: 0.09},
			{UpperBound: 3856.94, Rate: 0.12},
			{UpperBound: 7507.49, Rate: 0.14},
		},
		IncomeTax: Table{
			{UpperBound: 1903.98, Rate: 0, Deduction: 0},
			{UpperBound: 2826.65, Rate: 0.075, Deduction: 142.80},
			{UpperBound: 3751.05, Rate: 0.15, Deduction: 354.80},
			{UpperBound: 4664.68, Rate: 0.225, Deduction: 636.13},
			{UpperBound: math.Inf(1), Rate: 0.275, Deduction: 869.36},
		},
		DependentDeduction: 189.59,

		TransportCapRate:   0.06,
		SeveranceFundRate:  0.08,
		VacationFactor:     1.3333,
		MonthlyHours:       220,
		NoticeTenureMonths: 12,
	}
}

// DefaultSchedule returns the only schedule shipped with the calculator.
func DefaultSchedule() Schedule {
	return Schedule2023()
}
