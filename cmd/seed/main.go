package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/prophetsmedicine/clinic-platform/internal/awsconfig"
	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	appconfig "github.com/prophetsmedicine/clinic-platform/internal/config"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Seeds the document store with the canonical default catalog. Safe to
// rerun: it overwrites only the default ids, leaving bookings, inquiries
// and custom entries alone.
func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	if cfg.UseMemoryStore {
		logger.Error("seeding an in-memory store is pointless, configure DynamoDB")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.Load(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	store := docstore.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.DocumentsTable, logger)

	if err := catalog.NewService(store, logger).ResetDefaults(ctx); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("default catalog seeded",
		"table", cfg.DocumentsTable,
		"services", len(catalog.DefaultServices),
		"faqs", len(catalog.DefaultFAQs),
	)
}
