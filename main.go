package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qa-contracts/reqres-contract-tests/framework"
	"github.com/qa-contracts/reqres-contract-tests/framework/harness"
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/framework/schema"
	"github.com/qa-contracts/reqres-contract-tests/reqrestests"
	"github.com/qa-contracts/reqres-contract-tests/schemas"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var params commandParams
	exitCode := 0
	cmd := newRootCommand(&params, func(cmd *cobra.Command) error {
		exitCode = runTests(cmd.Context(), args[0], params, cmd.OutOrStdout())
		return nil
	})
	cmd.SetArgs(args[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n\n", err)
		_ = cmd.Usage()
		return 1
	}
	return exitCode
}

func runTests(ctx context.Context, program string, params commandParams, out io.Writer) int {
	logger, err := newLogger(params.debugAll)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	startupLogger := framework.LoggerWithPrefix(framework.ZapLogger(logger), "[startup] ")
	options := []harness.Option{harness.WithLogger(startupLogger)}
	for _, h := range params.headers {
		options = append(options, harness.WithHeader(h.name, h.value))
	}
	client, err := harness.New(params.serviceURL, options...)
	if err != nil {
		logger.Error("Invalid service URL", zap.Error(err))
		return 1
	}

	store, err := openSchemaStore(params.schemaDir)
	if err != nil {
		logger.Error("Schema store is not usable", zap.Error(err))
		return 1
	}

	logger.Info("Checking that the service is reachable", zap.String("url", client.BaseURL()))
	if err := client.Probe(ctx); err != nil {
		logger.Error("Service is not reachable", zap.Error(err))
		return 1
	}

	fmt.Fprintln(out)
	ldtest.PrintFilterDescription(out, params.filters)

	fmt.Fprintln(out, "Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	sc := reqrestests.SuiteContext{Context: ctx, Client: client, Schemas: store}
	results := reqrestests.RunTestSuite(sc, params.filters.AsFilter, testLogger)

	fmt.Fprintln(out)
	ldtest.PrintResults(out, results)
	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the failed tests again:")
		fmt.Fprintln(out, "  "+rerunCommand(program, params, results))
		return 1
	}
	return 0
}

// openSchemaStore uses the built-in schemas unless dir is set, and makes sure that every
// schema the suite needs can be loaded before any test runs.
func openSchemaStore(dir string) (*schema.Store, error) {
	var fsys fs.FS = schemas.FS()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	store := schema.NewStore(fsys)
	for _, name := range reqrestests.AllSchemas {
		if _, err := store.Load(name); err != nil {
			return nil, err
		}
	}
	return store, nil
}
