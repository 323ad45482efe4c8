package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree and captures both output streams.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestGoldenOutput(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		code int
	}{
		{"factor_text", []string{"--bound", "100", "factor", "2", "97", "99", "100"}, ExitSuccess},
		{"factor_out_of_range", []string{"--bound", "100", "factor", "1", "100", "101"}, ExitFailure},
		{"factor_terms", []string{"factor", "--terms", "27853", "30000"}, ExitSuccess},
		{"factor_json", []string{"--bound", "100", "--format", "json", "factor", "1", "100"}, ExitFailure},
		{"factor_terms_json", []string{"-b", "100", "--format", "json", "factor", "-t", "99"}, ExitSuccess},
		{"primes_text", []string{"--bound", "100", "primes"}, ExitSuccess},
		{"primes_json", []string{"--bound", "100", "--strategy", "stride", "--format", "json", "primes"}, ExitSuccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, code := runCLI(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assertGolden(t, tc.name, stdout)
		})
	}
}

func TestFactorLargeBoundPrimes(t *testing.T) {
	stdout, stderr, code := runCLI(t, "--bound", "30000", "factor", "21017", "29959", "27853")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "21017: 21017\n29959: 29959\n27853: 7 23 173\n", stdout)
}

func TestFactorNegativeInput(t *testing.T) {
	stdout, stderr, code := runCLI(t, "--bound", "100", "factor", "--", "-1", "0")
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "-1: out of range [2, 100]\n0: out of range [2, 100]\n", stdout)
	assert.Contains(t, stderr, "input out of range")
	assert.Contains(t, stderr, "factorize: 2 of 2 inputs out of range")
}

func TestFactorInvalidInteger(t *testing.T) {
	stdout, stderr, code := runCLI(t, "factor", "12", "twelve")
	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error [E002]: invalid integer \"twelve\"\n", stderr)
}

func TestFactorInvalidIntegerJSON(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json", "factor", "1.5")
	assert.Equal(t, ExitCommandError, code)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeArgument, resp.Error.Code)
}

func TestFactorRequiresArguments(t *testing.T) {
	_, stderr, code := runCLI(t, "factor")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "requires at least 1 arg")
}

func TestSmallBounds(t *testing.T) {
	stdout, _, code := runCLI(t, "--bound", "1", "primes")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "\n", stdout)

	stdout, _, code = runCLI(t, "--bound", "3", "factor", "2", "3", "4")
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "2: 2\n3: 3\n4: out of range [2, 3]\n", stdout)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join("testdata", "config", "json100.yaml")

	stdout, _, code := runCLI(t, "--config", path, "primes")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string       `json:"status"`
		Data   PrimesReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, PrimesReport{Bound: 100, Strategy: "direct", Primes: []int{2, 3, 5, 7}}, resp.Data)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join("testdata", "config", "json100.yaml")

	stdout, _, code := runCLI(t, "-c", path, "--format", "text", "--bound", "30000", "factor", "27853")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "27853: 7 23 173\n", stdout)
}

func TestInvalidConfiguration(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{"negative bound flag", []string{"--bound", "-5", "primes"}, "bound must not be negative: -5"},
		{"negative bound file", []string{"--config", filepath.Join("testdata", "config", "negative.yaml"), "primes"}, "bound must not be negative: -5"},
		{"unknown strategy", []string{"--strategy", "wheel", "primes"}, "unknown sieve strategy"},
		{"unknown format", []string{"--format", "xml", "primes"}, "invalid format"},
		{"missing config", []string{"--config", filepath.Join("testdata", "config", "missing.yaml"), "primes"}, "failed to read config file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tc.args...)
			assert.Equal(t, ExitCommandError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error [E001]")
			assert.Contains(t, stderr, tc.message)
		})
	}
}

func TestVerboseLogsSieve(t *testing.T) {
	_, stderr, code := runCLI(t, "-v", "--bound", "100", "--strategy", "stride", "primes")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, "building sieve")
	assert.Contains(t, stderr, "strategy=stride")
	assert.Contains(t, stderr, "sieve ready")
	assert.Contains(t, stderr, "primes=4")
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, code := runCLI(t, "--bound", "100", "primes")
	require.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
}

func TestUnknownFlag(t *testing.T) {
	_, stderr, code := runCLI(t, "primes", "--nope")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "unknown flag")
}
