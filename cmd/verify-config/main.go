package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/golos-labs/golos-bot/config"
)

// ANSI color codes for formatted output
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
	ColorBlue  = "\033[34m"
)

func main() {
	fmt.Printf("%s--- Golos Config Verifier ---%s\n", ColorBlue, ColorReset)

	path, err := config.Path()
	if err != nil {
		fmt.Printf("%s[FATAL]%s Could not determine config path: %v\n", ColorRed, ColorReset, err)
		os.Exit(1)
	}
	fmt.Printf("\nVerifying %s'%s'%s...\n", ColorBlue, path, ColorReset)

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  %s[FAIL]%s File not found or not readable: %v\n", ColorRed, ColorReset, err)
		os.Exit(1)
	}
	fmt.Printf("  %s[OK]%s File exists and is readable.\n", ColorGreen, ColorReset)

	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	var fileCfg config.Config
	if err := decoder.Decode(&fileCfg); err != nil {
		fmt.Printf("  %s[FAIL]%s JSON is invalid or contains unexpected fields: %v\n", ColorRed, ColorReset, err)
		os.Exit(1)
	}
	fmt.Printf("  %s[OK]%s JSON is valid and all fields are recognized.\n", ColorGreen, ColorReset)

	// Environment overrides apply on top of the file; validate the merged view.
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  %s[FAIL]%s Could not load merged configuration: %v\n", ColorRed, ColorReset, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  %s[FAIL]%s %v\n", ColorRed, ColorReset, err)
		os.Exit(1)
	}
	fmt.Printf("  %s[OK]%s Credentials present and STT backend is valid.\n", ColorGreen, ColorReset)

	fmt.Printf("\n%s✅ Configuration seems correct.%s\n", ColorGreen, ColorReset)
}
