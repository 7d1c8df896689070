package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mc2tc/tallyNative-sub002/cmd/classify"
	"github.com/mc2tc/tallyNative-sub002/cmd/report"
	"github.com/mc2tc/tallyNative-sub002/cmd/root"
	"github.com/mc2tc/tallyNative-sub002/cmd/snapshot"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, before any logging
	loadEnvSilently()

	// Configure the global log level so every logger created afterwards
	// inherits it
	configureLogLevelDirectly()

	// Now that logging is configured, initialize the root command
	root.Init()

	// Add all subcommands
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(snapshot.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level before any logging happens
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
