// Package report handles the reporting-ready aggregate command
package report

import (
	"github.com/mc2tc/tallyNative-sub002/cmd/common"
	"github.com/mc2tc/tallyNative-sub002/cmd/root"
	"github.com/mc2tc/tallyNative-sub002/internal/models"

	"github.com/spf13/cobra"
)

// Per-category input files. Categories without a file are skipped.
var (
	purchaseFile string
	bankFile     string
	cardFile     string
	saleFile     string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Build the cross-category reporting-ready aggregate",
	Long: `Collect the audit-ready records of every business category from the
per-category input files and merge them into a single reporting-ready
list, most recent first.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVar(&purchaseFile, "purchase", "", "Purchase records file")
	Cmd.Flags().StringVar(&bankFile, "bank", "", "Bank statement records file")
	Cmd.Flags().StringVar(&cardFile, "card", "", "Card statement records file")
	Cmd.Flags().StringVar(&saleFile, "sale", "", "Sale records file")
}

func reportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Report command called")

	files := map[models.Category]string{
		models.CategoryPurchase: purchaseFile,
		models.CategoryBank:     bankFile,
		models.CategoryCard:     cardFile,
		models.CategorySale:     saleFile,
	}

	byCategory := make(map[models.Category][]models.TransactionRecord)
	for _, category := range models.Categories {
		path := files[category]
		if path == "" {
			continue
		}
		collections := common.LoadCollections(root.App.GetLoader(), []string{path}, root.Log)
		byCategory[category] = collections[0]
	}
	if len(byCategory) == 0 {
		root.Log.Fatal("At least one per-category records file is required (--purchase, --bank, --card or --sale)")
	}

	ready, err := root.App.GetBuilder().ReportingReady(byCategory)
	if err != nil {
		root.Log.Fatalf("Error building reporting-ready aggregate: %v", err)
	}
	root.Log.Infof("Reporting-ready records: %d", len(ready))

	data, err := root.App.GetGenerator().GenerateReportingReady(ready, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	common.Emit(root.App.GetGenerator(), data, root.SharedFlags.Output, root.Log)
	root.Log.Info("Report generation completed successfully!")
}
