package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := executeLog(t, args...)

	return out, err
}

func executeLog(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	a := newApp()
	a.cmd.SetOut(out)
	a.cmd.SetErr(log)
	a.cmd.SetArgs(args)

	err = a.run(context.Background())

	return out.String(), log.String(), err
}

func TestCommands(t *testing.T) {
	type TC struct {
		name   string
		args   []string
		output string
		ok     bool
	}

	tcs := []TC{
		{
			name:   "divide",
			args:   []string{"divide", "-7", "2"},
			output: "-3 -1\n",
			ok:     true,
		},
		{
			name:   "divide large",
			args:   []string{"divide", "340282366920938463463374607431768211457", "18446744073709551616"},
			output: "18446744073709551616 1\n",
			ok:     true,
		},
		{
			name:   "divide hex",
			args:   []string{"divide", "0x100", "-0x10"},
			output: "-16 0\n",
			ok:     true,
		},
		{
			name: "divide by zero",
			args: []string{"divide", "1", "0"},
		},
		{
			name: "divide garbage",
			args: []string{"divide", "one", "2"},
		},
		{
			name:   "multiply",
			args:   []string{"multiply", "-18446744073709551616", "18446744073709551616"},
			output: "-340282366920938463463374607431768211456\n",
			ok:     true,
		},
		{
			name: "multiply arity",
			args: []string{"multiply", "1"},
		},
		{
			name:   "divider",
			args:   []string{"divider", "--width", "8", "7"},
			output: "divisor=7 multiplier=0x92 add=true shift=10\nnormalized=0xe0 shift=5 reciprocal=0x24\n",
			ok:     true,
		},
		{
			name: "divider zero",
			args: []string{"divider", "0"},
		},
		{
			name: "divider too wide",
			args: []string{"divider", "--width", "8", "256"},
		},
		{
			name: "bad log level",
			args: []string{"--log-level", "loud", "multiply", "1", "1"},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output, err := execute(t, tc.args...)
			if !tc.ok {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}

func TestVerify(t *testing.T) {
	output, err := execute(t, "verify", "--iterations", "50", "--widths", "16,64", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, "checked=300 failures=0\n", output)
}

func TestVerifyEnvironment(t *testing.T) {
	t.Setenv("ULTIMATH_VERIFY_ITERATIONS", "10")
	t.Setenv("ULTIMATH_LOG_FORMAT", "json")

	output, err := execute(t, "verify", "--widths", "32")
	require.NoError(t, err)
	require.Equal(t, "checked=30 failures=0\n", output)
}

func TestVerifyBadWidth(t *testing.T) {
	_, err := execute(t, "verify", "--widths", "12")
	require.Error(t, err)
}

func TestFailureLogged(t *testing.T) {
	_, log, err := executeLog(t, "divide", "--log-format", "json", "5", "0")
	require.Error(t, err)
	require.True(t, Error.Has(err))
	require.Contains(t, log, `"msg":"command failed"`)
	require.Contains(t, log, "division by zero")

	_, log, err = executeLog(t, "multiply", "--log-format", "json", "6", "7")
	require.NoError(t, err)
	require.NotContains(t, log, "command failed")
}
