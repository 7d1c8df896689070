// Package classify handles the stage classification command
package classify

import (
	"fmt"

	"github.com/mc2tc/tallyNative-sub002/cmd/common"
	"github.com/mc2tc/tallyNative-sub002/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Partition records into the pipeline stages of a category",
	Long: `Partition transaction records from the input file into the pipeline
stages of the given business category. Without --output the per-stage
groups are printed as text; with --output they are written in the
configured format (json or csv).`,
	Run: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Classify command called")
	root.Log.Infof("Input records file: %s", root.SharedFlags.Input)

	category := common.ParseCategory(root.SharedFlags.Category, root.Log)
	collections := common.LoadCollections(root.App.GetLoader(), []string{root.SharedFlags.Input}, root.Log)

	snap, err := root.App.GetBuilder().Build(category, collections...)
	if err != nil {
		root.Log.Fatalf("Error classifying records: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(common.RenderGroups(snap, root.SharedFlags.All))
		return
	}

	data, err := root.App.GetGenerator().GenerateSnapshot(snap, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating output: %v", err)
	}
	common.Emit(root.App.GetGenerator(), data, root.SharedFlags.Output, root.Log)
	root.Log.Info("Classification completed successfully!")
}
