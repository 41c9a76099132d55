package service

import (
	"context"
	"errors"
	"time"
)

const (
	logMsgUseCaseCompleted = "use case completed"
	logMsgUseCaseFailed    = "use case failed"
	logAttrUseCase         = "use_case"
	logAttrError           = "error"
	logAttrDurationMS      = "duration_ms"

	metricUseCaseDuration = "releasecraft_usecase_duration"
	metricUseCaseOutcome  = "releasecraft_usecase_outcome"
	labelUseCase          = "use_case"
	labelOutcome          = "outcome"
	outcomeSuccess        = "success"
	outcomeRejected       = "rejected"
	outcomeError          = "error"
)

// ErrNilCollaborator is returned by New when a required collaborator is missing.
var ErrNilCollaborator = errors.New("nil collaborator supplied")

// Service is the workflow orchestrator facade. All state lives in the
// injected collaborators; Service itself is safe for concurrent use.
type Service struct {
	artists  ArtistRepository
	songs    SongRepository
	releases ReleaseRepository
	streams  StreamRepository
	payments PaymentRepository
	clock    Clock
	ids      IDGenerator

	logger           Logger
	contextualLogger ContextualLogger
	metrics          MetricsCollector
}

// New creates a Service with the given collaborators and optional
// configuration. All collaborators are required.
func New(
	artists ArtistRepository,
	songs SongRepository,
	releases ReleaseRepository,
	streams StreamRepository,
	payments PaymentRepository,
	clock Clock,
	ids IDGenerator,
	opts ...Option,
) (*Service, error) {

	if artists == nil || songs == nil || releases == nil || streams == nil || payments == nil {
		return nil, ErrNilCollaborator
	}

	if clock == nil || ids == nil {
		return nil, ErrNilCollaborator
	}

	service := &Service{
		artists:  artists,
		songs:    songs,
		releases: releases,
		streams:  streams,
		payments: payments,
		clock:    clock,
		ids:      ids,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// observeUseCase logs and measures the outcome of one use-case execution.
// All observability hooks are optional and nil-safe.
func (s *Service) observeUseCase(ctx context.Context, useCase string, start time.Time, err error) {
	duration := time.Since(start)

	switch {
	case s.contextualLogger != nil && err != nil:
		s.contextualLogger.ErrorContext(ctx, logMsgUseCaseFailed,
			logAttrUseCase, useCase, logAttrError, err.Error(), logAttrDurationMS, durationToMilliseconds(duration))
	case s.contextualLogger != nil:
		s.contextualLogger.InfoContext(ctx, logMsgUseCaseCompleted,
			logAttrUseCase, useCase, logAttrDurationMS, durationToMilliseconds(duration))
	case s.logger != nil && err != nil:
		s.logger.Error(logMsgUseCaseFailed,
			logAttrUseCase, useCase, logAttrError, err.Error(), logAttrDurationMS, durationToMilliseconds(duration))
	case s.logger != nil:
		s.logger.Info(logMsgUseCaseCompleted,
			logAttrUseCase, useCase, logAttrDurationMS, durationToMilliseconds(duration))
	}

	if s.metrics != nil {
		s.metrics.RecordDuration(metricUseCaseDuration, duration, map[string]string{labelUseCase: useCase})
		s.metrics.IncrementCounter(metricUseCaseOutcome, map[string]string{
			labelUseCase: useCase,
			labelOutcome: outcomeFor(err),
		})
	}
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case isDomainRejection(err):
		return outcomeRejected
	default:
		return outcomeError
	}
}

func durationToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
