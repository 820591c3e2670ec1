package payroll

// Record is the compensation data of a single employee.
type Record struct {
	GrossSalary        float64 `json:"grossSalary"`
	Dependents         int     `json:"dependents"`
	TransportAllowance float64 `json:"transportAllowance"`
	MealAllowance      float64 `json:"mealAllowance"`
}

// Breakdown contains every line of the net pay calculation.
type Breakdown struct {
	Gross              float64 `json:"gross"`
	SocialSecurity     float64 `json:"socialSecurity"`
	IncomeTax          float64 `json:"incomeTax"`
	TransportDeduction float64 `json:"transportDeduction"`
	MealDeduction      float64 `json:"mealDeduction"`
	Net                float64 `json:"net"`
}

// Installments is the two-part year-end bonus disbursement.
type Installments struct {
	First  float64 `json:"first"`
	Second float64 `json:"second"`
}

// Calculator computes payroll figures against a fixed Schedule. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	schedule Schedule
}

// New returns a Calculator for the given schedule.
func New(schedule Schedule) *Calculator {
	return &Calculator{schedule: schedule}
}

// Schedule returns the schedule the calculator was built with.
func (c *Calculator) Schedule() Schedule {
	return c.schedule
}

// SocialSecurity computes the INSS withholding on the gross salary.
func (c *Calculator) SocialSecurity(r Record) float64 {
	return c.schedule.SocialSecurity.Evaluate(r.GrossSalary, Cumulative)
}

// IncomeTaxBase is gross minus INSS minus the per-dependent deduction. It is
// not floored at zero; a negative base lands in the exempt bracket.
func (c *Calculator) IncomeTaxBase(r Record) float64 {
	return r.GrossSalary - c.SocialSecurity(r) - c.schedule.DependentDeduction*float64(r.Dependents)
}

// IncomeTax computes the IRRF withholding.
func (c *Calculator) IncomeTax(r Record) float64 {
	return c.schedule.IncomeTax.Evaluate(c.IncomeTaxBase(r), FlatRate)
}

// NetPayBreakdown computes net pay together with each deduction.
func (c *Calculator) NetPayBreakdown(r Record) Breakdown {
	ss := c.SocialSecurity(r)
	tax := c.IncomeTax(r)

	transport := r.GrossSalary * c.schedule.TransportCapRate
	if r.TransportAllowance < transport {
		transport = r.TransportAllowance
	}

	return Breakdown{
		Gross:              r.GrossSalary,
		SocialSecurity:     ss,
		IncomeTax:          tax,
		TransportDeduction: transport,
		MealDeduction:      r.MealAllowance,
		Net:                r.GrossSalary - ss - tax - transport - r.MealAllowance,
	}
}

// NetPay is gross minus withholdings and benefit deductions.
func (c *Calculator) NetPay(r Record) float64 {
	return c.NetPayBreakdown(r).Net
}

// Severance is net pay plus notice pay plus the FGTS accrued over
// monthsWorked. Notice pay is a full net salary past the tenure threshold
// and half of it otherwise.
func (c *Calculator) Severance(r Record, monthsWorked int) float64 {
	net := c.NetPay(r)
	notice := net / 2
	if monthsWorked > c.schedule.NoticeTenureMonths {
		notice = net
	}
	fgts := r.GrossSalary * c.schedule.SeveranceFundRate * float64(monthsWorked)
	return net + notice + fgts
}

// VacationPay is gross salary plus the constitutional one-third bonus.
func (c *Calculator) VacationPay(r Record) float64 {
	return r.GrossSalary * c.schedule.VacationFactor
}

// YearEndBonus is the 13th salary prorated by months worked.
func (c *Calculator) YearEndBonus(r Record, monthsWorked int) float64 {
	return (r.GrossSalary / 12) * float64(monthsWorked)
}

// YearEndInstallments splits the 13th salary in two halves; withholdings are
// taken from the second one only.
func (c *Calculator) YearEndInstallments(r Record, monthsWorked int) Installments {
	withheld := c.SocialSecurity(r) + c.IncomeTax(r)
	first := c.YearEndBonus(r, monthsWorked) / 2
	return Installments{First: first, Second: first - withheld}
}

// SeveranceFundDeposit is the employer's monthly FGTS deposit.
func (c *Calculator) SeveranceFundDeposit(r Record) float64 {
	return r.GrossSalary * c.schedule.SeveranceFundRate
}

// Overtime pays hours at the hourly rate increased by percent.
func (c *Calculator) Overtime(r Record, hours, percent float64) float64 {
	return c.hourlyRate(r) * hours * (1 + percent/100)
}

// Benefits is the sum of both allowances.
func (c *Calculator) Benefits(r Record) float64 {
	return r.TransportAllowance + r.MealAllowance
}

// Simulate projects the monthly take-home pay for the record.
func (c *Calculator) Simulate(r Record) float64 {
	return c.NetPay(r)
}

// ContractValue is net pay over months, without bonuses or severance.
func (c *Calculator) ContractValue(r Record, months int) float64 {
	return c.NetPay(r) * float64(months)
}

// Raise returns the gross salary increased by percent.
func (c *Calculator) Raise(r Record, percent float64) float64 {
	return r.GrossSalary + r.GrossSalary*percent/100
}

// NoticePay is thirty days of salary at the daily rate.
func (c *Calculator) NoticePay(r Record) float64 {
	return r.GrossSalary / 30 * 30
}

// WorkdayValue pays hours at the plain hourly rate.
func (c *Calculator) WorkdayValue(r Record, hours float64) float64 {
	return c.hourlyRate(r) * hours
}

func (c *Calculator) hourlyRate(r Record) float64 {
	return r.GrossSalary / c.schedule.MonthlyHours
}
