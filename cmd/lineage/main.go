package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/common"
	"github.com/ternarybob/lineage/internal/services/importer"
	"github.com/ternarybob/lineage/internal/storage/badger"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	gedcomFile   = flag.String("file", "", "GEDCOM file to import")
	gedcomFileF  = flag.String("f", "", "GEDCOM file to import (shorthand)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Lineage version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Merge file flags (shorthand takes precedence)
	inputFile := *gedcomFile
	if *gedcomFileF != "" {
		inputFile = *gedcomFileF
	}
	if inputFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: lineage -file <path.ged> [-config lineage.toml]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("lineage.toml"); err == nil {
			configFiles = append(configFiles, "lineage.toml")
		}
	}

	// 1. Load configuration (defaults -> files in order -> env)
	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	// 2. Initialize logger with final configuration
	logger = common.InitLogger(config)

	// 3. Print banner
	common.PrintBanner()

	logger.Info().
		Strs("config_files", configFiles).
		Str("storage_path", config.Storage.Badger.Path).
		Str("log_level", config.Logging.Level).
		Msg("Application configuration loaded")

	// Open storage
	storage, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
		os.Exit(1)
	}
	defer storage.Close()

	// Run the import
	service := importer.NewService(storage, logger)
	stats, err := service.Import(context.Background(), inputFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", inputFile).Msg("Import failed")
		os.Exit(1)
	}

	report, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to render import report")
		os.Exit(1)
	}
	fmt.Println(string(report))
}
