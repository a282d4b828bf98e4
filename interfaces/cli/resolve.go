package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// resolveOptions holds the flags shared by every resolving command.
type resolveOptions struct {
	configPath string
	jsonOutput bool
	noFallback bool
	privileged bool
}

// addResolveFlags registers the shared flags on a resolving command.
func addResolveFlags(cmd *cobra.Command, opts *resolveOptions) {
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the full result envelope as JSON")
	cmd.Flags().BoolVar(&opts.noFallback, "no-fallback", false, "Surface backend errors instead of falling back")
	cmd.Flags().BoolVar(&opts.privileged, "privileged", false, "Bypass rate limiting")
}

// resolve wires the runtime, resolves the request, and renders the result.
func (a *App) resolve(ctx context.Context, opts *resolveOptions, req request.Request) error {
	rt, err := buildRuntime(opts.configPath)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	req.Identity = rt.identity
	req.DisableFallback = req.DisableFallback || opts.noFallback
	req.Privileged = req.Privileged || opts.privileged

	res := rt.orch.Resolve(ctx, req)
	return a.render(res, opts.jsonOutput)
}

// render writes the result. JSON mode emits the whole tagged envelope;
// the default mode prints the payload and reports the source on stderr.
func (a *App) render(res request.Result, jsonOutput bool) error {
	if jsonOutput {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(a.stdout, string(out))
		if !res.OK() {
			return fmt.Errorf("%s: %s", res.Err.Kind, res.Err.Message)
		}
		return nil
	}

	if !res.OK() {
		return fmt.Errorf("%s: %s", res.Err.Kind, res.Err.Message)
	}

	out, err := json.MarshalIndent(json.RawMessage(res.Value), "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(a.stdout, string(out))
	fmt.Fprintf(a.stderr, "source: %s\n", res.Source)
	return nil
}
