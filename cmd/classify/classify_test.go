package classify_test

import (
	"testing"

	"github.com/mc2tc/tallyNative-sub002/cmd/classify"
	"github.com/mc2tc/tallyNative-sub002/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestClassifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "classify", classify.Cmd.Use)
	assert.Contains(t, classify.Cmd.Short, "pipeline stages")
	assert.Contains(t, classify.Cmd.Long, "business category")
	assert.NotNil(t, classify.Cmd.Run)
}

func TestClassifyCommand_RunSignature(t *testing.T) {
	assert.IsType(t, func(*cobra.Command, []string) {}, classify.Cmd.Run)
}

func TestClassifyCommand_SharedFlagsIntegration(t *testing.T) {
	originalFlags := root.SharedFlags
	defer func() { root.SharedFlags = originalFlags }()

	root.SharedFlags.Input = "records.json"
	root.SharedFlags.Category = "purchase"
	root.SharedFlags.All = true

	assert.Equal(t, "records.json", root.SharedFlags.Input)
	assert.Equal(t, "purchase", root.SharedFlags.Category)
	assert.True(t, root.SharedFlags.All)
}
