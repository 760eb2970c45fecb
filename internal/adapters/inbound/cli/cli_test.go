package cli_test

import (
	"bytes"
	"testing"

	"github.com/abdidvp/shopcart/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const (
	fixtureStore   = "../../../../testdata/store/shopcart.yaml"
	invalidStore   = "../../../../testdata/store/invalid.yaml"
	malformedStore = "../../../../testdata/store/malformed.yaml"
)

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}
