package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// PrimesReport is the payload of the primes command.
type PrimesReport struct {
	Bound    int    `json:"bound"`
	Strategy string `json:"strategy"`
	Primes   []int  `json:"primes"`
}

// NewPrimesCommand creates the primes command.
func NewPrimesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "primes",
		Short:         "Print the trial divisors sieved for the bound",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrimes(rootOpts, cmd)
		},
	}

	return cmd
}

func runPrimes(opts *RootOptions, cmd *cobra.Command) error {
	f, err := opts.newFactorizer()
	if err != nil {
		return err
	}

	report := PrimesReport{
		Bound:    f.Bound(),
		Strategy: f.Strategy().String(),
		Primes:   f.Primes(),
	}
	if err := opts.formatter(cmd).Success(report); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}

func (r PrimesReport) renderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, joinInts(r.Primes))
	return err
}
