package math

import (
	"context"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/conversion"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/formula"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

// ServiceID identifies the math provider
const ServiceID = "math"

// Provider implements the math tools
type Provider struct {
	// Module instances
	units    *UnitOps
	formulas *FormulaOps
	problems *ProblemOps
	catalog  *CatalogOps

	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
	logger  *zap.Logger
}

// Option configures a Provider
type Option func(*Provider)

// WithLogger sets the provider logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records tool and domain metrics
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(p *Provider) { p.metrics = metrics }
}

// WithTracer opens a child span per tool execution
func WithTracer(tracer *tracing.Tracer) Option {
	return func(p *Provider) { p.tracer = tracer }
}

// NewProvider creates the math provider over the given engine, evaluator
// and catalog
func NewProvider(engine *conversion.Engine, eval evaluator.Evaluator, registry *formulas.Registry, opts ...Option) *Provider {
	p := &Provider{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	rec := recorder{metrics: p.metrics}
	p.units = &UnitOps{engine: engine, recorder: rec}
	p.formulas = &FormulaOps{calc: formula.NewCalculator(eval, p.logger), recorder: rec}
	p.problems = &ProblemOps{synth: solver.NewSynthesizer(eval, solver.WithLogger(p.logger)), recorder: rec}
	p.catalog = &CatalogOps{registry: registry}
	return p
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.units.GetTools()...)
	tools = append(tools, p.formulas.GetTools()...)
	tools = append(tools, p.problems.GetTools()...)
	tools = append(tools, p.catalog.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Math Service",
		Description: "Unit conversion, formula evaluation, problem classification and step synthesis",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"conversion",
			"calculator",
			"formulas",
			"classification",
			"solutions",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	var span *tracing.Span
	if p.tracer != nil {
		span, ctx = p.tracer.StartSpan(ctx, toolID)
		defer p.tracer.Submit(span)
	}
	timer := monitoring.NewTimer(p.metrics, ServiceID, toolID)

	result, err := p.dispatch(ctx, toolID, params, appCtx)

	status := "success"
	if err != nil || result == nil || !result.Success {
		status = "error"
	}
	timer.Stop(status)

	if span != nil {
		span.SetTag("tool", toolID)
		span.SetTag("status", status)
		if result != nil && result.Error != nil {
			span.SetTag("error", *result.Error)
		}
		span.Finish()
	}
	if status == "error" && result != nil && result.Error != nil {
		p.logger.Debug("Tool failed",
			zap.String("tool", toolID),
			zap.String("error", *result.Error),
		)
	}
	return result, err
}

func (p *Provider) dispatch(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Units
	case "math.convert":
		return p.units.Convert(ctx, params, appCtx)
	case "math.units":
		return p.units.Units(ctx, params, appCtx)

	// Formulas
	case "math.formula.variables":
		return p.formulas.Variables(ctx, params, appCtx)
	case "math.formula.substitute":
		return p.formulas.Substitute(ctx, params, appCtx)
	case "math.formula.evaluate":
		return p.formulas.Evaluate(ctx, params, appCtx)
	case "math.calculate":
		return p.formulas.Calculate(ctx, params, appCtx)

	// Problems
	case "math.classify":
		return p.problems.Classify(ctx, params, appCtx)
	case "math.solve":
		return p.problems.Solve(ctx, params, appCtx)

	// Catalog
	case "math.formulas.search":
		return p.catalog.Search(ctx, params, appCtx)

	default:
		return common.Failuref("unknown tool: %s", toolID)
	}
}

// recorder forwards domain events to metrics when configured
type recorder struct {
	metrics *monitoring.Metrics
}

func (r recorder) conversion(category string, ok bool) {
	if r.metrics != nil {
		r.metrics.RecordConversion(category, ok)
	}
}

func (r recorder) evaluation(source string, ok bool) {
	if r.metrics != nil {
		r.metrics.RecordEvaluation(source, ok)
	}
}

func (r recorder) solution(category string, hint bool) {
	if r.metrics != nil {
		r.metrics.RecordSolution(category, hint)
	}
}
