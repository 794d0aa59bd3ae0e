package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/10aParikh/visabridge/internal/logutil"
	"github.com/10aParikh/visabridge/tools"
)

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke a single tool and print the normalized result",
		Args:  cobra.ExactArgs(1),
		RunE:  runCallCmd,
	}
	cmd.Flags().StringArray("arg", nil, "Tool argument as key=value (repeatable).")
	cmd.Flags().String("json", "", "Tool arguments as a JSON object (wins over --arg on collisions).")
	return cmd
}

func runCallCmd(cmd *cobra.Command, args []string) error {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return err
	}

	dispatcher, registry := dispatcherFromViper(logger)
	spec, _ := registry.Lookup(args[0])

	bag := map[string]any{}
	kvs, _ := cmd.Flags().GetStringArray("arg")
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --arg %q (want key=value)", kv)
		}
		k = strings.TrimSpace(k)
		parsed, err := parseArgValue(spec, k, strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid --arg %q: %w", kv, err)
		}
		bag[k] = parsed
	}
	if raw, _ := cmd.Flags().GetString("json"); strings.TrimSpace(raw) != "" {
		var m map[string]any
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return fmt.Errorf("invalid --json: %w", err)
		}
		for k, v := range m {
			bag[k] = v
		}
	}

	res := dispatcher.Invoke(cmd.Context(), tools.Call{Tool: args[0], Args: bag})

	out := cmd.OutOrStdout()
	if !res.Ok() {
		fmt.Fprintln(out, res.Err)
		return nil
	}
	b, err := json.MarshalIndent(res.Payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// parseArgValue coerces a --arg value by the tool's declared parameter type,
// so --arg latitude=37.5 arrives as a number while --arg pan=4111... stays a
// string. Undeclared keys pass through as strings.
func parseArgValue(spec tools.Spec, key, raw string) (any, error) {
	for _, p := range spec.Params {
		if p.Name != key {
			continue
		}
		switch p.Type {
		case tools.TypeNumber, tools.TypeInteger:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("param %s wants a number", key)
			}
			return n, nil
		case tools.TypeObject:
			var m map[string]any
			if err := json.Unmarshal([]byte(raw), &m); err != nil {
				return nil, fmt.Errorf("param %s wants a JSON object", key)
			}
			return m, nil
		}
		return raw, nil
	}
	return raw, nil
}
