package runner

import (
	"log/slog"
	"strings"

	"github.com/chriserin/story/internal/parser"
	"github.com/chriserin/story/steps"
)

// Engine runs features against an ordered list of step providers and
// notifies attached observers as it goes. An Engine is meant for a single
// run; Run resets its counters.
type Engine struct {
	subject

	providers []steps.Provider
	logger    *slog.Logger

	result    Result
	skeletons skeletonSet
	runStatus Status
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func New(providers []steps.Provider, opts ...Option) *Engine {
	e := &Engine{
		providers: providers,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result returns the counters of the latest run.
func (e *Engine) Result() Result { return e.result }

// Status returns RunDone or RunFailed once a run has finished, "" before.
func (e *Engine) Status() Status { return e.runStatus }

// Skeletons returns the deduplicated suggestions for unmatched steps.
func (e *Engine) Skeletons() []Skeleton { return e.skeletons.list() }

// RunDir runs every *.feature file in dir.
func (e *Engine) RunDir(c *steps.Context, dir string) (Result, error) {
	sources, err := Discover(dir)
	if err != nil {
		e.reset()
		return e.fail(err)
	}
	if len(sources) == 0 {
		e.reset()
		return e.fail(&NoFeatureFilesError{Dir: dir})
	}
	return e.Run(c, sources)
}

// Run parses and executes each source in order. A source that cannot be read
// or parsed aborts the whole run: a RunFailed event is sent and the error is
// returned. Step failures never abort; they show up in the Result.
func (e *Engine) Run(c *steps.Context, sources []Source) (Result, error) {
	e.reset()
	if c == nil {
		c = steps.NewContext(nil)
	}
	if len(sources) == 0 {
		return e.fail(&NoFeatureFilesError{})
	}

	for _, src := range sources {
		content, err := src.Read()
		if err != nil {
			return e.fail(&SourceError{Name: src.Name(), Err: err})
		}
		feature, err := parser.Parse(src.Name(), content)
		if err != nil {
			return e.fail(err)
		}
		e.runFeature(c, feature)
	}

	e.done()
	return e.result, nil
}

func (e *Engine) reset() {
	e.result = Result{}
	e.skeletons = skeletonSet{}
	e.runStatus = ""
	e.status = ""
}

func (e *Engine) runFeature(c *steps.Context, f *parser.Feature) {
	e.logger.Debug("running feature", "file", f.File, "scenarios", len(f.Scenarios))
	e.emit(FeatureText, f.Description, "")

	passed := 0
	for _, sc := range f.Scenarios {
		if e.runScenario(c, sc) {
			passed++
		}
	}
	if passed == len(f.Scenarios) {
		e.result.Features.Passed++
	}
}

// runScenario reports whether every step of sc passed.
func (e *Engine) runScenario(c *steps.Context, sc *parser.Scenario) bool {
	e.logger.Debug("running scenario", "scenario", sc.Title(), "line", sc.Line)
	e.emit(ScenarioText, sc.Description, "")

	var status Status
	passed := 0
	for _, step := range sc.Steps {
		var failure string
		switch status {
		case StepFailed, StepPending, StepSkipped:
			e.result.Steps.Skipped++
			status = StepSkipped
		default:
			out := steps.Match(step.Match, c, e.providers)
			e.logger.Debug("step", "text", step.Text, "outcome", out.Status)
			switch out.Status {
			case steps.Success:
				status = StepPassed
				e.result.Steps.Passed++
				passed++
			case steps.Pending:
				status = StepPending
				e.result.Steps.Pending++
				e.result.Scenarios.Skipped++
			case steps.Failed:
				status = StepFailed
				e.assertionFailed(len(out.Failures))
				failure = strings.Join(out.Failures, "\n")
			case steps.NotMatched:
				status = StepMissing
				e.result.Steps.Missing++
				e.skeletons.add(NewSkeleton(step.Match))
			}
		}
		e.emit(status, []string{step.Text}, failure)
	}

	ok := passed == len(sc.Steps)
	if ok {
		e.result.Scenarios.Passed++
	}
	return ok
}

// assertionFailed counts n failed assertions. Each one increments the failed
// counter at every level, whether or not the scenario or feature already
// counted as failed.
func (e *Engine) assertionFailed(n int) {
	e.result.Steps.Failed += n
	e.result.Scenarios.Failed += n
	e.result.Features.Failed += n
}

func (e *Engine) done() {
	e.runStatus = RunDone

	result := e.result
	e.summary = &result
	e.emit(RunDone, result.Summary(), "")

	if sk := e.skeletons.list(); len(sk) > 0 {
		e.suggestions = sk
		e.emit(RunDone, []string{MissingStepsHeading}, "")
	}
}

func (e *Engine) fail(err error) (Result, error) {
	e.runStatus = RunFailed
	e.logger.Warn("run aborted", "error", err)
	e.emit(RunFailed, nil, err.Error())
	return e.result, err
}
