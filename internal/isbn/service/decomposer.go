package service

import (
	"context"
	"errors"
	"fmt"

	"isbnsplit/internal/isbn/checksum"
	isbnerrors "isbnsplit/internal/isbn/errors"
	"isbnsplit/internal/isbn/tokenizer"
	"isbnsplit/internal/isbn/validator"
	apperrors "isbnsplit/pkg/errors"
	"isbnsplit/pkg/logger"
	"isbnsplit/pkg/model"
	"isbnsplit/pkg/sanitizer"
)

// EventPublisher receives the outcome of every decomposition.
type EventPublisher interface {
	PublishDecomposition(ctx context.Context, input string, result model.ValidationResult) error
}

type DecomposerService interface {
	// Decompose runs one raw input line through the pipeline. A failed
	// validation returns both the failure result and a matching *AppError.
	Decompose(ctx context.Context, raw string) (model.ValidationResult, error)
}

type decomposerService struct {
	validator *validator.ISBNValidator
	publisher EventPublisher
	log       *logger.Logger
}

// NewDecomposerService wires the pipeline. publisher may be nil.
func NewDecomposerService(
	validator *validator.ISBNValidator,
	publisher EventPublisher,
	log *logger.Logger,
) DecomposerService {
	return &decomposerService{
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *decomposerService) Decompose(ctx context.Context, raw string) (model.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		appErr := apperrors.Timeout("ISBN decomposition cancelled")
		appErr.Err = err
		return model.ValidationResult{}, appErr
	}

	normalized := sanitizer.NormalizeISBN(raw)
	groups := tokenizer.Split(normalized)

	result, cause := s.evaluate(groups)

	if result.OK() {
		s.log.Info("ISBN decomposed",
			"isbn", normalized,
			"groups", groups.Values(),
		)
	} else {
		s.log.Warn("ISBN rejected",
			"isbn", normalized,
			"groups_found", groups.Present(),
			"kind", result.Kind().String(),
			"error", cause,
		)
	}

	s.publish(ctx, normalized, result)

	if !result.OK() {
		appErr := apperrors.FromKind(result.Kind(), cause)
		var verrs validator.ValidationErrors
		if errors.As(cause, &verrs) {
			appErr = appErr.WithDetails(verrs.Details())
		}
		return result, appErr
	}

	return result, nil
}

// evaluate validates every group, then checks the checksum only when all
// groups passed.
func (s *decomposerService) evaluate(groups model.GroupSet) (model.ValidationResult, error) {
	if err := s.validator.Validate(groups); err != nil {
		return model.Failure(isbnerrors.Kind(err)), err
	}

	if !checksum.Verify(groups) {
		expected := checksum.Expected(checksum.WeightedSum(groups))
		return model.Failure(model.ErrorInvalidChecksum), fmt.Errorf(
			"expected check value %d, got %q: %w",
			expected,
			groups[model.CheckDigit].Value[:1],
			isbnerrors.ErrInvalidChecksum,
		)
	}

	return model.Success(groups), nil
}

func (s *decomposerService) publish(ctx context.Context, input string, result model.ValidationResult) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishDecomposition(ctx, input, result); err != nil {
		s.log.Warn("Failed to publish decomposition event",
			"isbn", input,
			"kind", result.Kind().String(),
			"error", err,
		)
	}
}
