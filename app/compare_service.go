package app

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"nestedlm/adapters/dataset"
	"nestedlm/adapters/ols"
	"nestedlm/domain/core"
	"nestedlm/domain/lm"
	"nestedlm/internal"
	"nestedlm/internal/analysis/ftest"
	"nestedlm/ports"
)

// CompareService fits a sequence of nested models against a dataset and runs
// the sequential F-test over them.
type CompareService struct {
	logger *internal.Logger
}

// NewCompareService creates a comparison service.
func NewCompareService(logger *internal.Logger) *CompareService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &CompareService{logger: logger}
}

// Comparison is the outcome of one comparison run.
type Comparison struct {
	RunID      core.RunID
	Response   string
	ModelSpecs [][]string
	Result     *lm.FTestResult
	Table      string
}

// Compare resolves the response and predictor columns, fits every model
// concurrently (intercept column first, then the named predictors, in order
// of decreasing complexity), and derives the comparison statistics. An empty
// predictor list fits the intercept-only null model.
func (s *CompareService) Compare(ctx context.Context, tbl *dataset.Table, response string, modelSpecs [][]string) (*Comparison, error) {
	if len(modelSpecs) < 2 {
		return nil, core.NewInvalidArityError(len(modelSpecs))
	}

	y, err := tbl.Column(response)
	if err != nil {
		return nil, fmt.Errorf("response column: %w", err)
	}

	models := make([]ports.FittedLinearModel, len(modelSpecs))
	g, _ := errgroup.WithContext(ctx)
	for i, spec := range modelSpecs {
		g.Go(func() error {
			x, err := buildDesign(tbl, spec)
			if err != nil {
				return fmt.Errorf("model %d: %w", i+1, err)
			}
			m, err := ols.Fit(y, x)
			if err != nil {
				return fmt.Errorf("model %d: %w", i+1, err)
			}
			models[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := ftest.FTest(models)
	if err != nil {
		return nil, err
	}

	runID := core.NewRunID()
	s.logger.Info("comparison %s: %d models fitted on %d observations, response=%s",
		runID, len(models), tbl.Rows, response)

	return &Comparison{
		RunID:      runID,
		Response:   response,
		ModelSpecs: modelSpecs,
		Result:     result,
		Table:      ftest.RenderTable(result),
	}, nil
}

func buildDesign(tbl *dataset.Table, predictors []string) (*mat.Dense, error) {
	cols := len(predictors) + 1
	x := mat.NewDense(tbl.Rows, cols, nil)
	for i := 0; i < tbl.Rows; i++ {
		x.Set(i, 0, 1)
	}
	for j, name := range predictors {
		col, err := tbl.Column(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		x.SetCol(j+1, col)
	}
	return x, nil
}
