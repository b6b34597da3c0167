package report

import (
	"context"
	"fmt"

	"github.com/mkovacev/liftcycle/internal/accessory"
	"github.com/mkovacev/liftcycle/internal/plan"
	"github.com/mkovacev/liftcycle/internal/progression"
	"github.com/mkovacev/liftcycle/internal/telemetry/metrics"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/internal/users"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=report_test

type progressionEngine interface {
	Advance(ctx context.Context, userID int) error
	CurrentCycle(ctx context.Context, userID int) (*progression.Cycle, int, error)
}

type accessoriesRepo interface {
	LatestPlan(ctx context.Context, userID int) ([]accessory.Exercise, error)
}

// Generator assembles the full weekly report for one user: it first
// auto-progresses the user's cycles so a current training max always
// exists, then renders the page.
type Generator struct {
	engine      progressionEngine
	accessories accessoriesRepo
	renderer    *Renderer
	metrics     *metrics.Manager
}

func NewGenerator(
	engine progressionEngine,
	accessories accessoriesRepo,
	renderer *Renderer,
	metricsManager *metrics.Manager,
) *Generator {
	return &Generator{
		engine:      engine,
		accessories: accessories,
		renderer:    renderer,
		metrics:     metricsManager,
	}
}

// WeeklyReport advances the user's progression and renders this week's
// workout page.
func (g *Generator) WeeklyReport(ctx context.Context, user users.User) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "report.weeklyReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", user.ID))

	if err := g.engine.Advance(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("advance progression: %w", err)
	}

	cycle, week, err := g.engine.CurrentCycle(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("current cycle: %w", err)
	}

	sets := plan.Generate(cycle.TrainingMax, []int{week})
	reference := plan.Reference(sets)

	accessories, err := g.accessories.LatestPlan(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("latest accessory plan: %w", err)
	}

	weekStart := cycle.StartDate.AddDate(0, 0, (week-1)*7)
	page, err := g.renderer.Render(Data{
		UserName:    user.Name,
		Week:        week,
		WeekStart:   weekStart,
		WeekEnd:     weekStart.AddDate(0, 0, 7),
		TrainingMax: cycle.TrainingMax,
		Sets:        sets,
		Reference:   reference,
		Accessories: accessories,
	})
	if err != nil {
		return nil, err
	}

	if g.metrics != nil {
		g.metrics.CounterReportsGenerated.Inc()
		g.metrics.CounterPlansGenerated.Inc()
	}
	return page, nil
}
