package snapshot_test

import (
	"testing"

	cmdsnapshot "github.com/mc2tc/tallyNative-sub002/cmd/snapshot"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotCommand_Metadata(t *testing.T) {
	assert.Equal(t, "snapshot", cmdsnapshot.Cmd.Use)
	assert.Contains(t, cmdsnapshot.Cmd.Short, "snapshot")
	assert.Contains(t, cmdsnapshot.Cmd.Long, "first occurrence wins")
	assert.NotNil(t, cmdsnapshot.Cmd.Run)
}

func TestSnapshotCommand_SourceFlag(t *testing.T) {
	flag := cmdsnapshot.Cmd.Flags().Lookup("source")
	assert.NotNil(t, flag)
	assert.Equal(t, "s", flag.Shorthand)
}

func TestSnapshotCommand_RunSignature(t *testing.T) {
	assert.IsType(t, func(*cobra.Command, []string) {}, cmdsnapshot.Cmd.Run)
}
