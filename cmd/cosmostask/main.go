package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/suparena/cosmostasks"
	"github.com/suparena/cosmostasks/credentials"
	"github.com/suparena/cosmostasks/observe"
	"github.com/suparena/cosmostasks/taskmodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	profileFlag   = flag.String("profile", "", "Path to a YAML account profile (default: environment / .env)")
	databaseFlag  = flag.String("database", "", "Database name")
	containerFlag = flag.String("container", "", "Container name")

	queryFlag  = flag.String("query", "", "Cosmos DB SQL query to run")
	paramsFlag = flag.String("params", "", `Query parameters as JSON, e.g. [{"name":"@age","value":44}]`)

	readFlag = flag.String("read", "", "Item id to point-read")
	pkFlag   = flag.String("partition-key", "", "Partition key for -read, or override for -create")

	createFlag = flag.String("create", "", "Item body as JSON to create")
	upsertFlag = flag.Bool("upsert", false, "Use upsert semantics for -create")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := cosmostasks.GetVersionInfo()
		fmt.Printf("cosmostask version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	creds, database, container, err := loadAccount()
	if err != nil {
		return err
	}

	tasks := cosmostasks.New(creds,
		cosmostasks.WithHook(observe.NewSlogHook(nil)),
		cosmostasks.WithDefaults(database, container),
	)

	ctx := context.Background()
	switch {
	case *queryFlag != "":
		return runQuery(ctx, tasks)
	case *readFlag != "":
		return runRead(ctx, tasks)
	case *createFlag != "":
		return runCreate(ctx, tasks)
	default:
		flag.Usage()
		return fmt.Errorf("one of -query, -read, or -create is required")
	}
}

func loadAccount() (credentials.Provider, string, string, error) {
	database := *databaseFlag
	container := *containerFlag

	if *profileFlag != "" {
		profile, err := credentials.LoadProfile(*profileFlag)
		if err != nil {
			return nil, "", "", err
		}
		creds, err := profile.Provider()
		if err != nil {
			return nil, "", "", err
		}
		if database == "" {
			database = profile.Database
		}
		if container == "" {
			container = profile.Container
		}
		return creds, database, container, nil
	}

	creds, err := credentials.FromEnv()
	if err != nil {
		return nil, "", "", err
	}
	return creds, database, container, nil
}

func runQuery(ctx context.Context, tasks *cosmostasks.Tasks) error {
	var parameters []azcosmos.QueryParameter
	if *paramsFlag != "" {
		if err := json.Unmarshal([]byte(*paramsFlag), &parameters); err != nil {
			return fmt.Errorf("failed to parse -params: %w", err)
		}
	}

	items, err := tasks.QueryItems(ctx, taskmodels.QueryInput{
		Query:      *queryFlag,
		Parameters: parameters,
	})
	if err != nil {
		return err
	}
	return printJSON(items)
}

func runRead(ctx context.Context, tasks *cosmostasks.Tasks) error {
	if *pkFlag == "" {
		return fmt.Errorf("-read requires -partition-key")
	}
	item, err := tasks.ReadItem(ctx, taskmodels.ReadInput{
		ItemID:       *readFlag,
		PartitionKey: azcosmos.NewPartitionKeyString(*pkFlag),
	})
	if err != nil {
		return err
	}
	return printJSON(item)
}

func runCreate(ctx context.Context, tasks *cosmostasks.Tasks) error {
	var body taskmodels.Item
	if err := json.Unmarshal([]byte(*createFlag), &body); err != nil {
		return fmt.Errorf("failed to parse -create body: %w", err)
	}

	in := taskmodels.CreateInput{Body: body}
	if *pkFlag != "" {
		pk := azcosmos.NewPartitionKeyString(*pkFlag)
		in.PartitionKey = &pk
	}

	var (
		item taskmodels.Item
		err  error
	)
	if *upsertFlag {
		item, err = tasks.UpsertItem(ctx, in)
	} else {
		item, err = tasks.CreateItem(ctx, in)
	}
	if err != nil {
		return err
	}
	return printJSON(item)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
