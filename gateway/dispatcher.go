package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/10aParikh/visabridge/tools"
	"github.com/10aParikh/visabridge/visa"
	"github.com/google/uuid"
)

// ClientFactory abstracts visa.Factory so tests can substitute a stub
// transport.
type ClientFactory interface {
	NewClient() (*visa.Client, error)
}

// Dispatcher executes tool calls against the partner API and folds every
// outcome into a Result. It holds no per-call state; concurrent invocations
// are independent.
type Dispatcher struct {
	factory  ClientFactory
	registry *tools.Registry
	logger   *slog.Logger
}

func New(factory ClientFactory, registry *tools.Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{factory: factory, registry: registry, logger: logger}
}

// Invoke runs a single tool call: lookup, required-parameter check, default
// fill, body build, one HTTP round trip. Invoke never returns a Go error to
// the host; failures surface as Result.Err. Argument values are never logged,
// they carry PANs.
func (d *Dispatcher) Invoke(ctx context.Context, call tools.Call) tools.Result {
	spec, ok := d.registry.Lookup(call.Tool)
	if !ok {
		return errorResult(fmt.Errorf("unknown tool: %s", call.Tool))
	}

	args, err := fillArgs(spec, call.Args)
	if err != nil {
		return errorResult(err)
	}

	var body any
	if spec.Build != nil {
		built, err := spec.Build(args)
		if err != nil {
			return errorResult(err)
		}
		body = built
	}

	id := uuid.NewString()
	start := time.Now()
	d.logger.Debug("tool call started",
		"tool", spec.Name, "call_id", id, "method", spec.Method, "path", spec.Path)

	client, err := d.factory.NewClient()
	if err != nil {
		d.logger.Warn("tool call failed", "tool", spec.Name, "call_id", id, "error", err)
		return errorResult(err)
	}
	defer client.Close()

	payload, err := client.Do(ctx, spec.Method, spec.Path, body)
	if err != nil {
		d.logger.Warn("tool call failed",
			"tool", spec.Name, "call_id", id, "duration", time.Since(start), "error", err)
		return errorResult(err)
	}

	d.logger.Debug("tool call finished",
		"tool", spec.Name, "call_id", id, "duration", time.Since(start))
	return tools.Result{Payload: payload}
}

// fillArgs verifies required parameters and fills declared defaults without
// mutating the caller's bag.
func fillArgs(spec tools.Spec, args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(args)+len(spec.Params))
	for k, v := range args {
		out[k] = v
	}
	for _, p := range spec.Params {
		if v, ok := out[p.Name]; ok && v != nil {
			continue
		}
		if p.Required {
			return nil, fmt.Errorf("missing required param: %s", p.Name)
		}
		if p.Default != nil {
			out[p.Name] = p.Default
		}
	}
	return out, nil
}

func errorResult(err error) tools.Result {
	return tools.Result{Err: "Error: " + err.Error()}
}
