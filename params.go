package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
)

const envPrefix = "REQRES"

type header struct {
	name  string
	value string
}

type commandParams struct {
	serviceURL string
	schemaDir  string
	configFile string
	headers    []header
	filters    ldtest.RegexFilters
	debug      bool
	debugAll   bool
}

// newRootCommand creates the command that parses and validates the parameters, then calls
// run. Every flag except --run, --skip, and --config can also be set with an environment
// variable such as REQRES_URL, or in the config file.
func newRootCommand(params *commandParams, run func(cmd *cobra.Command) error) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "reqres-contract-tests",
		Short:         "Run API contract tests against a reqres-compatible service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return params.load(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("url", "", "base URL of the service under test")
	flags.String("schemas", "", "directory of JSON schema files (default: built-in schemas)")
	flags.StringArray("header", nil, `header to send with every request, as "Name: value" (repeatable)`)
	flags.Bool("debug", false, "enable debug logging for failed tests")
	flags.Bool("debug-all", false, "enable debug logging for all tests")
	flags.StringVar(&params.configFile, "config", "", "YAML or JSON config file")
	flags.Var(&params.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	flags.Var(&params.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")

	for _, name := range []string{"url", "schemas", "header", "debug", "debug-all"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func (c *commandParams) load(v *viper.Viper, flags *pflag.FlagSet) error {
	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c.serviceURL = v.GetString("url")
	c.schemaDir = v.GetString("schemas")
	c.debug = v.GetBool("debug")
	c.debugAll = v.GetBool("debug-all")
	if c.serviceURL == "" {
		return errors.New("--url is required (or set " + envPrefix + "_URL)")
	}

	c.headers = nil
	for _, s := range headerValues(v, flags) {
		h, err := parseHeader(s)
		if err != nil {
			return err
		}
		c.headers = append(c.headers, h)
	}

	// Patterns from the config file only apply if the flag was not given.
	for name, list := range map[string]*ldtest.RegexList{
		"run":  &c.filters.MustMatch,
		"skip": &c.filters.MustNotMatch,
	} {
		if flags.Changed(name) {
			continue
		}
		for _, pattern := range v.GetStringSlice(name) {
			if err := list.Set(pattern); err != nil {
				return fmt.Errorf("invalid %s pattern in config file: %w", name, err)
			}
		}
	}
	return nil
}

// headerValues reads the --header flag without splitting its values on commas. In an
// environment variable, multiple headers are separated by newlines.
func headerValues(v *viper.Viper, flags *pflag.FlagSet) []string {
	if flags.Changed("header") {
		values, _ := flags.GetStringArray("header")
		return values
	}
	if s, ok := v.Get("header").(string); ok {
		var values []string
		for _, line := range strings.Split(s, "\n") {
			if strings.TrimSpace(line) != "" {
				values = append(values, line)
			}
		}
		return values
	}
	return v.GetStringSlice("header")
}

func parseHeader(s string) (header, error) {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.ContainsAny(name, " \t") {
		return header{}, fmt.Errorf(`invalid header %q: must be "Name: value"`, s)
	}
	return header{name: name, value: strings.TrimSpace(value)}, nil
}

// rerunCommand returns a command line that runs only the tests that failed. Headers are
// left out because they usually hold credentials.
func rerunCommand(program string, params commandParams, results ldtest.Results) string {
	var b commandBuilder
	b.add(program, "--url", params.serviceURL)
	if params.schemaDir != "" {
		b.add("--schemas", params.schemaDir)
	}
	if params.configFile != "" {
		b.add("--config", params.configFile)
	}
	for _, f := range results.Failures {
		b.add("--run", ldtest.PatternFor(f.TestID))
	}
	if params.debugAll {
		b.add("--debug-all")
	} else {
		b.add("--debug")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
