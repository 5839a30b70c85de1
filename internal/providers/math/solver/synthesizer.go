package solver

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
)

// HintSteps is how many steps a hint exposes
const HintSteps = 2

// ReviewStep replaces the final answer when evaluation fails
const ReviewStep = "Review the problem and try again"

// nonExpression matches everything the evaluator is not handed
var nonExpression = regexp.MustCompile(`[^0-9+\-*/().^√]`)

// Solution is one synthesized explanation. FullSteps always carries the
// whole sequence; Steps is what the caller should show.
type Solution struct {
	ID        id.SolutionID `json:"id"`
	Problem   string        `json:"problem"`
	Category  Category      `json:"category"`
	Steps     []string      `json:"steps"`
	FullSteps []string      `json:"full_steps"`
	IsHint    bool          `json:"is_hint"`
	Answer    *float64      `json:"answer,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Reveal returns a copy exposing every step. The evaluator is not called.
func (s Solution) Reveal() Solution {
	out := s
	out.FullSteps = append([]string(nil), s.FullSteps...)
	out.Steps = append([]string(nil), s.FullSteps...)
	out.IsHint = false
	return out
}

// Synthesizer builds step-by-step solutions
type Synthesizer struct {
	eval   evaluator.Evaluator
	ids    *id.Generator
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Synthesizer
type Option func(*Synthesizer)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator sets the generator used for solution ids
func WithIDGenerator(g *id.Generator) Option {
	return func(s *Synthesizer) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithClock sets the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSynthesizer creates a synthesizer backed by eval
func NewSynthesizer(eval evaluator.Evaluator, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		eval:   eval,
		ids:    id.Default(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve classifies problem and synthesizes its solution
func (s *Synthesizer) Solve(ctx context.Context, problem string, showHint bool) Solution {
	return s.Synthesize(ctx, problem, Classify(problem), showHint)
}

// Synthesize builds the template steps for category, then tries to evaluate
// the numeric part of problem. Evaluation failure degrades to ReviewStep.
func (s *Synthesizer) Synthesize(ctx context.Context, problem string, category Category, showHint bool) Solution {
	steps := TemplateSteps(problem, category)

	var answer *float64
	expression := StripExpression(problem)
	value, err := s.eval.Evaluate(ctx, expression)
	if err != nil {
		s.logger.Debug("Problem evaluation failed",
			zap.String("category", string(category)),
			zap.String("expression", expression),
			zap.Error(err),
		)
		steps = append(steps, ReviewStep)
	} else {
		answer = &value
		steps = append(steps, "Final answer: "+FormatAnswer(value))
	}

	sol := Solution{
		ID:        id.SolutionID(s.ids.GenerateWithPrefix(id.SolutionPrefix)),
		Problem:   problem,
		Category:  category,
		FullSteps: steps,
		IsHint:    showHint,
		Answer:    answer,
		Timestamp: s.now(),
	}
	if showHint {
		sol.Steps = append([]string(nil), steps[:HintSteps]...)
	} else {
		sol.Steps = append([]string(nil), steps...)
	}
	return sol
}

// TemplateSteps returns the narrative steps for category, without the
// final answer step
func TemplateSteps(problem string, category Category) []string {
	switch category {
	case LinearEquation:
		return []string{
			"Given equation: " + problem,
			"Isolate the variable by moving constants to one side",
			"Simplify both sides",
			"Divide by the coefficient of the variable",
		}
	case QuadraticEquation:
		return []string{
			"Given equation: " + problem,
			"Identify coefficients a, b, and c",
			"Apply quadratic formula: x = (-b ± √(b² - 4ac)) / 2a",
			"Calculate discriminant: b² - 4ac",
			"Substitute values and solve",
		}
	case Arithmetic:
		return []string{
			"Expression: " + problem,
			"Follow order of operations (PEMDAS)",
			"Evaluate parentheses first",
			"Then exponents, multiplication/division, addition/subtraction",
		}
	default:
		return []string{
			"Problem: " + problem,
			"Analyze the problem type",
			"Apply appropriate mathematical principles",
			"Work through step by step",
		}
	}
}

// StripExpression drops every character that is not a digit or one of
// + - * / ( ) . ^ √
func StripExpression(problem string) string {
	return nonExpression.ReplaceAllString(problem, "")
}

// FormatAnswer renders a value with the shortest exact representation
func FormatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
