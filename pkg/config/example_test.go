package config_test

import (
	"fmt"
	"log"

	"github.com/ajitpratap0/colframe/pkg/config"
)

// ExampleDefault shows the workload used when no file is given.
func ExampleDefault() {
	cfg := config.Default()

	fmt.Printf("Rows: %d\n", cfg.Bench.Rows)
	fmt.Printf("String length: %d..%d\n", cfg.Bench.MinStringLen, cfg.Bench.MaxStringLen)
	fmt.Printf("Log level: %s\n", cfg.Logging.Level)

	// Output:
	// Rows: 10000000
	// String length: 3..40
	// Log level: info
}

// ExampleConfig_Validate shows validation of a modified configuration.
func ExampleConfig_Validate() {
	cfg := config.Default()
	cfg.Bench.Rows = 1000

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	fmt.Println("Configuration is valid!")

	cfg.Bench.MaxStringLen = 1
	fmt.Println(cfg.Validate())

	// Output:
	// Configuration is valid!
	// config: bench.max_string_len must be >= bench.min_string_len
}
