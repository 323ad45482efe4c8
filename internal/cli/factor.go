package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"primefactorizer/prime"
)

// FactorReport is the payload of the factor command.
type FactorReport struct {
	Bound   int            `json:"bound"`
	Results []FactorResult `json:"results"`

	terms bool
}

// FactorResult is the outcome for a single input.
type FactorResult struct {
	N       int        `json:"n"`
	Valid   bool       `json:"valid"`
	Factors []int      `json:"factors,omitempty"`
	Terms   []TermView `json:"terms,omitempty"`
}

// TermView is the JSON form of a prime power.
type TermView struct {
	Prime int `json:"prime"`
	Power int `json:"power"`
}

// NewFactorCommand creates the factor command.
func NewFactorCommand(rootOpts *RootOptions) *cobra.Command {
	var terms bool

	cmd := &cobra.Command{
		Use:   "factor <n>...",
		Short: "Print the prime factors of each integer",
		Long: `Print the prime factors of each integer in ascending order.

Exits with status 1 when any input lies outside [2, bound].`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactor(rootOpts, args, terms, cmd)
		},
	}

	cmd.Flags().BoolVarP(&terms, "terms", "t", false, "group factors into prime powers")

	return cmd
}

func runFactor(opts *RootOptions, args []string, terms bool, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	inputs, err := parseIntegers(args)
	if err != nil {
		_ = formatter.Error(ErrCodeArgument, err.Error())
		return WrapExitError(ExitCommandError, "invalid argument", err)
	}

	f, err := opts.newFactorizer()
	if err != nil {
		return err
	}

	report := FactorReport{
		Bound:   f.Bound(),
		Results: make([]FactorResult, 0, len(inputs)),
		terms:   terms,
	}
	rejected := 0
	for _, n := range inputs {
		result := factorOne(f, n, terms)
		if !result.Valid {
			rejected++
			opts.logger.Warn("input out of range", "n", n, "bound", f.Bound())
		}
		report.Results = append(report.Results, result)
	}

	if err := formatter.Success(report); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if rejected > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d inputs out of range", rejected, len(inputs)))
	}
	return nil
}

func factorOne(f *prime.Factorizer, n int, terms bool) FactorResult {
	if !terms {
		factors, ok := f.Factorize(n)
		return FactorResult{N: n, Valid: ok, Factors: factors}
	}

	grouped, ok := f.Terms(n)
	result := FactorResult{N: n, Valid: ok}
	for _, t := range grouped {
		result.Terms = append(result.Terms, TermView{Prime: t.Prime, Power: t.Power})
	}
	return result
}

func parseIntegers(args []string) ([]int, error) {
	inputs := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", arg)
		}
		inputs = append(inputs, n)
	}
	return inputs, nil
}

func (r FactorReport) renderText(w io.Writer) error {
	for _, result := range r.Results {
		var line string
		switch {
		case !result.Valid:
			line = fmt.Sprintf("%d: out of range [2, %d]", result.N, r.Bound)
		case r.terms:
			parts := make([]string, len(result.Terms))
			for i, t := range result.Terms {
				parts[i] = prime.Term{Prime: t.Prime, Power: t.Power}.String()
			}
			line = fmt.Sprintf("%d: %s", result.N, strings.Join(parts, " "))
		default:
			line = fmt.Sprintf("%d: %s", result.N, joinInts(result.Factors))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
