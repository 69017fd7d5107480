package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/campus-concierge-api/internal/tools"
)

// ErrToolRoundsExceeded is returned when the model keeps requesting tools past the round limit.
var ErrToolRoundsExceeded = errors.New("model exceeded the tool call round limit")

// DefaultMaxToolRounds bounds the function-calling loop.
const DefaultMaxToolRounds = 4

// toolCall is a backend neutral function call requested by the model.
type toolCall struct {
	ID   string
	Name string
	Args tools.Args
	// Err is set when the backend could not decode the call arguments.
	Err error
}

// toolOutcome is the response sent back for one call.
type toolOutcome struct {
	Call     toolCall
	Response map[string]any
}

// reply is one model turn.
type reply struct {
	Text  string
	Calls []toolCall
}

// conversation is a single chat turn held by a backend. Next sends the history and
// records the model reply; Answer appends the tool results for the following round.
type conversation interface {
	Next(ctx context.Context) (reply, error)
	Answer(outcomes []toolOutcome)
}

// backend opens conversations against one model provider.
type backend interface {
	Open(systemPrompt, message string, available []*tools.Tool) conversation
}

// Agent drives the function-calling loop over a backend and the campus tool registry.
type Agent struct {
	backend   backend
	registry  *tools.Registry
	now       func() time.Time
	maxRounds int
	logger    *zap.Logger
}

func newAgent(b backend, registry *tools.Registry, opts Options) *Agent {
	opts = opts.withDefaults()
	return &Agent{
		backend:   b,
		registry:  registry,
		now:       opts.Now,
		maxRounds: opts.MaxToolRounds,
		logger:    opts.Logger,
	}
}

// Resolve runs the loop until the model answers without calling tools.
func (a *Agent) Resolve(ctx context.Context, message string) (Result, error) {
	conv := a.backend.Open(SystemPrompt(a.now()), message, a.registry.List())
	var rows []map[string]any

	for round := 0; ; round++ {
		r, err := conv.Next(ctx)
		if err != nil {
			return nil, err
		}
		if len(r.Calls) == 0 {
			return finish(r.Text, rows), nil
		}
		if round >= a.maxRounds {
			return nil, ErrToolRoundsExceeded
		}

		outcomes, produced, err := a.runTools(ctx, r.Calls)
		if err != nil {
			return nil, err
		}
		rows = append(rows, produced...)
		conv.Answer(outcomes)
	}
}

// runTools executes one round of calls concurrently and keeps results in call order.
// Tool failures become {"error": ...} responses; only context cancellation aborts.
func (a *Agent) runTools(ctx context.Context, calls []toolCall) ([]toolOutcome, []map[string]any, error) {
	outcomes := make([]toolOutcome, len(calls))
	produced := make([][]map[string]any, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			outcomes[i] = toolOutcome{Call: call}
			if call.Err != nil {
				outcomes[i].Response = map[string]any{"error": call.Err.Error()}
				return nil
			}

			a.logger.Debug("tool call", zap.String("tool", call.Name), zap.Any("args", call.Args))
			out, err := a.registry.Execute(gctx, call.Name, call.Args)
			if err != nil {
				a.logger.Debug("tool call failed", zap.String("tool", call.Name), zap.Error(err))
				outcomes[i].Response = map[string]any{"error": err.Error()}
				return nil
			}

			records, _ := out.([]map[string]any)
			produced[i] = records
			outcomes[i].Response = map[string]any{"result": records}
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("tool execution interrupted: %w", err)
	}

	var rows []map[string]any
	for _, records := range produced {
		rows = append(rows, records...)
	}
	return outcomes, rows, nil
}

// finish classifies the final text. Plain text is paired with the rows the tools produced.
func finish(text string, rows []map[string]any) Result {
	res := FromOutput(text)
	if _, opaque := res.(OpaqueResult); opaque && len(rows) > 0 {
		return StructuredResult{Message: text, Data: rows}
	}
	return res
}
