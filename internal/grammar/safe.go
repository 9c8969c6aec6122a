package grammar

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/types"
)

// safeChecker turns provider failures into an empty issue list.
type safeChecker struct {
	inner  Checker
	name   string
	logger *zap.Logger
}

// Safe wraps a checker so that failures are logged and reported as no issues.
// Cancellation of ctx is still returned as an error.
func Safe(inner Checker, name string, log *zap.Logger) Checker {
	if inner == nil {
		inner = Noop{}
	}
	return &safeChecker{inner: inner, name: name, logger: logger.OrNop(log)}
}

func (s *safeChecker) Check(ctx context.Context, text string) ([]types.GrammarIssue, error) {
	issues, err := s.inner.Check(ctx, text)
	if err == nil {
		return issues, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	s.logger.Warn("grammar check unavailable, continuing without issues",
		zap.String(logger.FieldGrammarProvider, s.name),
		zap.Error(err),
	)
	return []types.GrammarIssue{}, nil
}
