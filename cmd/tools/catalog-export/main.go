// cmd/tools/catalog-export/main.go
//
// Exports the registered tool catalog to a JSON file. Deployments and
// docs tooling read the catalog instead of scraping the running site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/gateway"
	"bit-tools/internal/tools"
	"bit-tools/pkg/registry"
)

// offlineGenerator satisfies the gateway interface without network access.
// Catalog export never processes requests, so it must not be reachable.
type offlineGenerator struct{}

func (offlineGenerator) Generate(ctx context.Context, req gateway.Request) *gateway.Response {
	return &gateway.Response{Err: errors.NewGatewayError(fmt.Errorf("catalog export runs offline"))}
}

func main() {
	output := flag.String("output", "catalog.json", "path to write the tool catalog JSON")
	flag.Parse()

	log := logger.NewNoOpLogger()
	reg := registry.New()
	tools.RegisterAll(reg, offlineGenerator{}, log)

	catalog := reg.Export()
	if err := catalog.WriteFile(*output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d tools to %s\n", len(catalog.Tools), *output)
}
