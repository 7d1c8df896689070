// Package snapshot handles the category snapshot command
package snapshot

import (
	"github.com/mc2tc/tallyNative-sub002/cmd/common"
	"github.com/mc2tc/tallyNative-sub002/cmd/root"
	"github.com/mc2tc/tallyNative-sub002/internal/report"

	"github.com/spf13/cobra"
)

// Source collection files merged behind the primary input.
var sources []string

// Cmd represents the snapshot command
var Cmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Build the deduplicated stage snapshot of a category",
	Long: `Build the stage snapshot of a business category from the pending
records in --input plus any --source collections. Records sharing an ID
across collections are kept once, first occurrence wins.`,
	Run: snapshotFunc,
}

func init() {
	Cmd.Flags().StringArrayVarP(&sources, "source", "s", nil, "Additional records file merged after the input (repeatable)")
}

func snapshotFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Snapshot command called")
	root.Log.Infof("Input records file: %s", root.SharedFlags.Input)

	category := common.ParseCategory(root.SharedFlags.Category, root.Log)
	paths := append([]string{root.SharedFlags.Input}, sources...)
	collections := common.LoadCollections(root.App.GetLoader(), paths, root.Log)

	snap, err := root.App.GetBuilder().Build(category, collections...)
	if err != nil {
		root.Log.Fatalf("Error building snapshot: %v", err)
	}
	root.Log.Infof("Stage counts: %s", report.StageCounts(snap))

	data, err := root.App.GetGenerator().GenerateSnapshot(snap, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating snapshot: %v", err)
	}
	common.Emit(root.App.GetGenerator(), data, root.SharedFlags.Output, root.Log)
	root.Log.Info("Snapshot build completed successfully!")
}
