// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"

	"github.com/mc2tc/tallyNative-sub002/internal/dateutils"
	"github.com/mc2tc/tallyNative-sub002/internal/loader"
	"github.com/mc2tc/tallyNative-sub002/internal/logging"
	"github.com/mc2tc/tallyNative-sub002/internal/models"
	"github.com/mc2tc/tallyNative-sub002/internal/report"
	"github.com/mc2tc/tallyNative-sub002/internal/snapshot"

	"github.com/sirupsen/logrus"
)

// ParseCategory validates a --category flag value.
func ParseCategory(raw string, log *logrus.Logger) models.Category {
	if raw == "" {
		log.Fatal("A business category is required (--category purchase|bank|card|sale)")
	}
	category := models.Category(strings.ToLower(raw))
	if !category.Valid() {
		log.Fatalf("Unknown business category: %s", raw)
	}
	return category
}

// LoadCollections loads every given records file in order. Paths must not
// be empty.
func LoadCollections(ldr *loader.Loader, paths []string, log *logrus.Logger) [][]models.TransactionRecord {
	collections := make([][]models.TransactionRecord, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			log.Fatal("An input records file is required (--input)")
		}
		records, err := ldr.LoadFile(path)
		if err != nil {
			log.Fatalf("Error loading records: %v", err)
		}
		collections = append(collections, records)
	}
	return collections
}

// Emit writes rendered output to the given file, or to stdout when no
// output path is set.
func Emit(gen *report.Generator, data []byte, outputPath string, log *logrus.Logger) {
	if outputPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := gen.WriteFile(outputPath, data); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.WithField(logging.FieldOutputFile, outputPath).Info("Output written")
}

// RenderGroups renders a snapshot's stage groups as human-readable text.
// Preview rows are shown unless showAll is set.
func RenderGroups(snap snapshot.Snapshot, showAll bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", snap.Category)
	for _, st := range snap.Order {
		view := snap.View(st)
		fmt.Fprintf(&b, "\n%s (%d)\n", st, len(view.Full))
		rows := view.Preview
		if showAll {
			rows = view.Full
		}
		for _, tx := range rows {
			fmt.Fprintf(&b, "  %-36s  %-10s  %10s %s  %s\n",
				tx.ID, dateutils.ToISODate(tx.EffectiveTimestamp()),
				tx.Summary.TotalAmount.StringFixed(2),
				tx.Summary.Currency, tx.Summary.ThirdPartyName)
		}
		if !showAll && len(view.Full) > len(rows) {
			fmt.Fprintf(&b, "  ... and %d more\n", len(view.Full)-len(rows))
		}
	}
	return b.String()
}
