package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/redstack/internal/compose"
	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/provisioning"
)

// Options are the flags shared by every command.
type Options struct {
	ConfigPath string
	Set        []string
	Verbose    bool
	MetricsOut string
}

// Factory function variables - can be replaced in tests.
var (
	loadContext = config.Load

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// parseOverrides turns key=value pairs into a map.
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set value %q: expected key=value", p)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

func newObserver(opts Options) provisioning.Observer {
	verbosity := 0
	if opts.Verbose {
		verbosity = 1
	}
	return provisioning.NewConsoleObserver(stderr, verbosity)
}

// composePlan loads the effective context and runs one composition pass.
// Metrics are written to opts.MetricsOut whether or not the pass succeeds.
func composePlan(ctx context.Context, opts Options, extra ...compose.Option) (*compose.Plan, error) {
	overrides, err := parseOverrides(opts.Set)
	if err != nil {
		return nil, err
	}
	input, err := loadContext(opts.ConfigPath, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load context: %w", err)
	}

	reg := prometheus.NewRegistry()
	composeOpts := append([]compose.Option{
		compose.WithObserver(newObserver(opts)),
		compose.WithMetrics(provisioning.NewMetrics(reg)),
	}, extra...)

	plan, composeErr := compose.Compose(ctx, input, composeOpts...)

	if opts.MetricsOut != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsOut, reg); err != nil {
			return nil, fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if composeErr != nil {
		return nil, composeErr
	}
	return plan, nil
}
