package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/modelstore"
	"github.com/suparena/modelstore/docstore/es"
	"github.com/suparena/modelstore/registry"
	"github.com/suparena/modelstore/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to a YAML store configuration file")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := modelstore.GetVersionInfo()
		fmt.Printf("ModelStore indices version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	var cfg *es.Config
	if *configFlag != "" {
		loaded, err := es.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = es.ConfigFromEnv()
	}

	if cfg.WriteIndex == "" && cfg.Pattern == "" {
		fmt.Fprintln(os.Stderr, "no indices configured; set write_index and pattern in the config file or ES_WRITE_INDEX/ES_PATTERN in the environment")
		os.Exit(1)
	}

	registry.RegisterIndexDescriptor[storagemodels.ModelConfig](cfg.IndexDescriptor())

	fmt.Println("Registered index descriptors:")
	for typeName, desc := range registry.ListIndexDescriptors() {
		fmt.Printf("  %-40s write=%s pattern=%s\n", typeName, desc.WriteIndex, desc.Pattern)
	}
}
