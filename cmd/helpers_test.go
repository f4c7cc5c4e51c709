package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	domainmocks "mutagene.dev/pkg/mutagene/internal/domain/mocks"
)

// newTestRootCmd builds a fresh root with the given subcommands and keeps the
// log file inside the test's temp dir.
func newTestRootCmd(t *testing.T, commands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Setenv("MUTAGENE_LOG_FILENAME", filepath.Join(t.TempDir(), "mutagene.log"))

	cmd := newRootCmd()
	cmd.AddCommand(commands...)

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, output
}

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}
