package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lucasrprt/stocksync/internal/gateway"
	"github.com/lucasrprt/stocksync/internal/usecase"
)

func main() {
	physicalFile := flag.String("physical", "", "Path to the store's physical stock dump (required)")
	platformFile := flag.String("platform", "", "Path to the platform's CSV export (required)")
	outDir := flag.String("out", ".", "Directory for the generated exports")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *physicalFile == "" || *platformFile == "" {
		fmt.Println("Error: both -physical and -platform are required.")
		flag.Usage()
		os.Exit(1)
	}

	physicalRaw, err := os.ReadFile(*physicalFile)
	if err != nil {
		log.Fatalf("Failed to read physical stock file: %v", err)
	}
	platformRaw, err := os.ReadFile(*platformFile)
	if err != nil {
		log.Fatalf("Failed to read platform export: %v", err)
	}

	// Wire the gateway into the usecase by hand; the application is small
	// enough that anything fancier would be noise.
	stockGateway := gateway.NewCSVStockGateway()
	syncUseCase := usecase.NewSyncUseCase(stockGateway, log)

	result, err := syncUseCase.Run(context.Background(), physicalRaw, platformRaw)
	if err != nil {
		log.Fatalf("Synchronization failed: %v", err)
	}

	outputs := map[string][]byte{
		"shopify_updated.csv": result.PlatformCSV,
		"combined.csv":        result.CombinedCSV,
		"filtered.csv":        result.FilteredCSV,
		"report.txt":          []byte(result.Report),
	}
	if len(result.NewProductsCSV) > 0 {
		outputs["new_products.csv"] = result.NewProductsCSV
	}

	for name, data := range outputs {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.WithField("file", path).Debug("export written")
	}

	fmt.Println(result.Report)
}
