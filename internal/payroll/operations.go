package payroll

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation is returned by Lookup for names outside the catalog.
	ErrUnknownOperation = errors.New("unknown payroll operation")
	// ErrNegativeCount is returned by Validate when a count that must be
	// non-negative is below zero.
	ErrNegativeCount = errors.New("count must not be negative")
)

// Param names an extra scalar an operation needs besides the Record.
type Param string

const (
	ParamMonthsWorked Param = "monthsWorked"
	ParamHours        Param = "hours"
	ParamPercent      Param = "percent"
)

// Args carries the per-operation scalars. Operations ignore fields they do
// not list in Params.
type Args struct {
	MonthsWorked int     `json:"monthsWorked"`
	Hours        float64 `json:"hours"`
	Percent      float64 `json:"percent"`
}

// Figure is one labelled amount produced by an operation.
type Figure struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Operation is a named calculation the CLI and the HTTP API can dispatch to.
type Operation struct {
	Name   string
	Title  string
	Params []Param
	// SignedMonths allows a negative MonthsWorked. Only severance accepts
	// one; every other count is non-negative.
	SignedMonths bool
	Run          func(c *Calculator, r Record, a Args) []Figure
}

// Validate rejects negative dependents, and negative months worked unless
// the operation takes signed months.
func (op Operation) Validate(r Record, a Args) error {
	if r.Dependents < 0 {
		return fmt.Errorf("%w: dependents = %d", ErrNegativeCount, r.Dependents)
	}
	if op.SignedMonths || a.MonthsWorked >= 0 {
		return nil
	}
	for _, p := range op.Params {
		if p == ParamMonthsWorked {
			return fmt.Errorf("%w: monthsWorked = %d", ErrNegativeCount, a.MonthsWorked)
		}
	}
	return nil
}

var operations = []Operation{
	{
		Name:         "rescisao",
		Title:        "Calculadora de rescisão",
		Params:       []Param{ParamMonthsWorked},
		SignedMonths: true,
		Run: func(c *Calculator, r Record, a Args) []Figure {
			return []Figure{{Key: "severance", Label: "Valor da Rescisão", Amount: c.Severance(r, a.MonthsWorked)}}
		},
	},
	{
		Name:  "liquido",
		Title: "Calculadora de salário líquido",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			b := c.NetPayBreakdown(r)
			return []Figure{
				{Key: "netPay", Label: "Salário líquido", Amount: b.Net},
				{Key: "incomeTax", Label: "IRRF", Amount: b.IncomeTax},
				{Key: "socialSecurity", Label: "INSS", Amount: b.SocialSecurity},
			}
		},
	},
	{
		Name:  "ferias",
		Title: "Calculadora de férias",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "vacationPay", Label: "Valor das Férias", Amount: c.VacationPay(r)}}
		},
	},
	{
		Name:   "salario13",
		Title:  "Calculadora de 13º salário",
		Params: []Param{ParamMonthsWorked},
		Run: func(c *Calculator, r Record, a Args) []Figure {
			return []Figure{{Key: "yearEndBonus", Label: "Valor do 13º salário", Amount: c.YearEndBonus(r, a.MonthsWorked)}}
		},
	},
	{
		Name:   "parcelas13",
		Title:  "Parcelas do 13º salário",
		Params: []Param{ParamMonthsWorked},
		Run: func(c *Calculator, r Record, a Args) []Figure {
			p := c.YearEndInstallments(r, a.MonthsWorked)
			return []Figure{
				{Key: "firstInstallment", Label: "Primeira parcela", Amount: p.First},
				{Key: "secondInstallment", Label: "Segunda parcela", Amount: p.Second},
			}
		},
	},
	{
		Name:  "fgts",
		Title: "Consulta e cálculo do FGTS",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "severanceFund", Label: "Valor do FGTS", Amount: c.SeveranceFundDeposit(r)}}
		},
	},
	{
		Name:   "horas-extras",
		Title:  "Calculadora de horas extras e adicional noturno",
		Params: []Param{ParamHours, ParamPercent},
		Run: func(c *Calculator, r Record, a Args) []Figure {
			return []Figure{{Key: "overtime", Label: "Valor de Horas Extras", Amount: c.Overtime(r, a.Hours, a.Percent)}}
		},
	},
	{
		Name:  "beneficios",
		Title: "Calculadora de benefícios",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "benefits", Label: "Benefícios", Amount: c.Benefits(r)}}
		},
	},
	{
		Name:  "simulacao",
		Title: "Simulação de diferentes cenários de remuneração e benefícios",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "simulation", Label: "Simulação", Amount: c.Simulate(r)}}
		},
	},
	{
		Name:   "contrato",
		Title:  "Verificação de detalhes do contrato de trabalho",
		Params: []Param{ParamMonthsWorked},
		Run: func(c *Calculator, r Record, a Args) []Figure {
			return []Figure{{Key: "contractValue", Label: "Contrato", Amount: c.ContractValue(r, a.MonthsWorked)}}
		},
	},
	{
		Name:  "inss",
		Title: "Calculadora de contribuição ao INSS",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "socialSecurity", Label: "Valor do INSS", Amount: c.SocialSecurity(r)}}
		},
	},
	{
		Name:  "irrf",
		Title: "Calculadora de Imposto de Renda Retido na Fonte (IRRF)",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "incomeTax", Label: "Valor do IRRF", Amount: c.IncomeTax(r)}}
		},
	},
	{
		Name:   "reajuste",
		Title:  "Simulação de reajustes salariais",
		Params: []Param{ParamPercent},
		Run: func(c *Calculator, r Record, a Args) []Figure {
			return []Figure{{Key: "raise", Label: "Valor de Reajuste", Amount: c.Raise(r, a.Percent)}}
		},
	},
	{
		Name:  "aviso",
		Title: "Calculadora de aviso prévio",
		Run: func(c *Calculator, r Record, _ Args) []Figure {
			return []Figure{{Key: "noticePay", Label: "Valor do Aviso", Amount: c.NoticePay(r)}}
		},
	},
	{
		Name:   "jornada",
		Title:  "Gerenciamento de jornada de trabalho",
		Params: []Param{ParamHours},
		Run: func(c *Calculator, r Record, a Args) []Figure {
			return []Figure{{Key: "workdayValue", Label: "Valor da Jornada", Amount: c.WorkdayValue(r, a.Hours)}}
		},
	},
}

// Operations returns the catalog in display order. The slice is a copy.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// Lookup finds an operation by name.
func Lookup(name string) (Operation, error) {
	for _, op := range operations {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
