// Package cli implements the clt command tree: one subcommand per payroll
// operation plus the serve command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Simplici0/clt/internal/config"
	"github.com/Simplici0/clt/internal/httpapi"
	"github.com/Simplici0/clt/internal/money"
	"github.com/Simplici0/clt/internal/payroll"
	"github.com/Simplici0/clt/internal/prompt"
)

const separator = "---------------------------"

var paramLabels = map[payroll.Param]string{
	payroll.ParamMonthsWorked: "Meses trabalhados: ",
	payroll.ParamHours:        "Horas trabalhadas: ",
	payroll.ParamPercent:      "Percentual: ",
}

// Figures printed without a colon after the label, as the severance line
// has always been.
var bareLabels = map[string]bool{
	"severance": true,
}

// NewRootCommand builds the command tree. The calculator is shared by every
// subcommand.
func NewRootCommand(cfg config.Config, calc *payroll.Calculator, log *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "clt",
		Short:         "Ferramenta de linha de comando para cálculos trabalhistas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, op := range payroll.Operations() {
		root.AddCommand(newOperationCommand(op, calc, log))
	}
	root.AddCommand(newServeCommand(cfg, calc, log))

	return root
}

func newOperationCommand(op payroll.Operation, calc *payroll.Calculator, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   op.Name,
		Short: op.Title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := prompt.New(cmd.InOrStdin(), out)

			record, err := readRecord(p)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, op.Title)
			fmt.Fprintln(out, separator)

			args, err := readArgs(p, op)
			if err != nil {
				return err
			}

			figures := op.Run(calc, record, args)
			log.Debug("calculation completed",
				zap.String("operation", op.Name),
				zap.Float64("grossSalary", record.GrossSalary),
				zap.Int("dependents", record.Dependents),
				zap.Any("args", args),
			)
			return printFigures(out, figures)
		},
	}
}

func newServeCommand(cfg config.Config, calc *payroll.Calculator, log *zap.Logger) *cobra.Command {
	addr := cfg.Addr
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expõe os cálculos como API HTTP JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return httpapi.New(calc, log, cfg.APIToken).ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", addr, "endereço de escuta")
	return cmd
}

// readRecord collects the four base inputs in the order the tool has always
// asked for them.
func readRecord(p *prompt.Prompter) (payroll.Record, error) {
	var (
		r   payroll.Record
		err error
	)
	if r.GrossSalary, err = p.Float("Digite o seu salário bruto (exemplo: 1640.00): "); err != nil {
		return r, err
	}
	if r.Dependents, err = p.Uint("Número de dependentes: "); err != nil {
		return r, err
	}
	if r.MealAllowance, err = p.Float("Valor de Vale Refeição: "); err != nil {
		return r, err
	}
	if r.TransportAllowance, err = p.Float("Valor de Vale Transporte: "); err != nil {
		return r, err
	}
	return r, nil
}

func readArgs(p *prompt.Prompter, op payroll.Operation) (payroll.Args, error) {
	var (
		a   payroll.Args
		err error
	)
	for _, param := range op.Params {
		label := paramLabels[param]
		switch param {
		case payroll.ParamMonthsWorked:
			if op.SignedMonths {
				a.MonthsWorked, err = p.Int(label)
			} else {
				a.MonthsWorked, err = p.Uint(label)
			}
		case payroll.ParamHours:
			a.Hours, err = p.Float(label)
		case payroll.ParamPercent:
			a.Percent, err = p.Float(label)
		default:
			err = fmt.Errorf("unsupported parameter %q", param)
		}
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

func printFigures(w io.Writer, figures []payroll.Figure) error {
	for _, f := range figures {
		format := "%s: %s\n"
		if bareLabels[f.Key] {
			format = "%s %s\n"
		}
		if _, err := fmt.Fprintf(w, format, f.Label, money.Format(f.Amount)); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
