// Package worker runs the response collection loop: it picks up prompts
// that have not been answered recently, asks each configured AI source,
// and stores the answer together with detected mentions and extractions.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/infrastructure/extraction"
	"github.com/visibly/ai-visibility-api/infrastructure/repository"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
	"github.com/visibly/ai-visibility-api/pkg/utils"
)

const pollInterval = time.Minute

type Worker struct {
	promptRepo   repository.PromptRepository
	brandRepo    repository.BrandRepository
	responseRepo repository.ResponseRepository
	querier      extraction.Querier
	extractor    extraction.Extractor
	cfg          config.Worker
}

func New(
	promptRepo repository.PromptRepository,
	brandRepo repository.BrandRepository,
	responseRepo repository.ResponseRepository,
	querier extraction.Querier,
	extractor extraction.Extractor,
	cfg config.Worker,
) *Worker {
	return &Worker{
		promptRepo:   promptRepo,
		brandRepo:    brandRepo,
		responseRepo: responseRepo,
		querier:      querier,
		extractor:    extractor,
		cfg:          cfg,
	}
}

// Run processes batches until the context is cancelled, sleeping between
// cycles so an empty queue does not busy-loop.
func (w *Worker) Run(ctx context.Context) error {
	if !w.cfg.Enabled {
		logrus.Info("Worker disabled by configuration")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"sources":    w.cfg.Sources,
		"batch_size": w.cfg.BatchSize,
	}).Info("Starting response collection worker")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		w.RunCycle(ctx)

		select {
		case <-ctx.Done():
			logrus.Info("Stopping response collection worker")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunCycle processes one batch of pending prompts for every source.
func (w *Worker) RunCycle(ctx context.Context) {
	for _, source := range w.cfg.Sources {
		if ctx.Err() != nil {
			return
		}
		w.processSource(ctx, source)
	}
}

// processSource answers every prompt in this source's pending batch. A
// prompt is pending when it has no completed response from the source
// within the rescrape window, so each prompt is re-asked at most once
// per window.
func (w *Worker) processSource(ctx context.Context, source string) {
	since := time.Now().Add(-time.Duration(w.cfg.RescrapeWindowHours) * time.Hour)

	prompts, err := w.promptRepo.ListPendingPrompts(source, since, w.cfg.BatchSize)
	if err != nil {
		logrus.WithError(err).WithField("ai_source", source).
			Error("Error listing pending prompts")
		return
	}

	if len(prompts) == 0 {
		return
	}

	logrus.WithFields(logrus.Fields{
		"ai_source": source,
		"prompts":   len(prompts),
	}).Info("Processing pending prompts")

	delay := time.Duration(w.cfg.RequestDelaySeconds) * time.Second

	for i, prompt := range prompts {
		if ctx.Err() != nil {
			return
		}

		if err := w.processPrompt(ctx, source, prompt); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"ai_source": source,
				"prompt_id": prompt.ID,
			}).Error("Error processing prompt")
		}

		if i < len(prompts)-1 {
			time.Sleep(delay)
		}
	}
}

func (w *Worker) processPrompt(ctx context.Context, source string, prompt *domain.Prompt) error {
	response := &domain.Response{
		ID:         utils.GenerateResponseID(),
		PromptID:   prompt.ID,
		PromptText: prompt.Text,
		AISource:   source,
		Status:     domain.ResponseStatusProcessing,
	}

	if err := w.responseRepo.CreateResponse(response); err != nil {
		return err
	}

	answer, err := w.querier.Query(ctx, prompt.Text)
	if err != nil {
		return w.responseRepo.MarkFailed(response.ID, err.Error())
	}

	brandNames, err := w.brandRepo.ListBrandNamesByCategory(prompt.CategoryID)
	if err != nil {
		return w.responseRepo.MarkFailed(response.ID, err.Error())
	}

	mentioned := extraction.DetectMentions(answer, brandNames)

	extractions, err := w.extractor.ExtractBrandData(ctx, prompt.Text, answer, mentioned)
	if err != nil {
		// the raw answer and mention detection are still worth keeping
		logrus.WithError(err).WithField("response_id", response.ID).
			Warn("Brand extraction failed, storing response without it")
		extractions = map[string]domain.BrandExtraction{}
	}

	if err := w.responseRepo.MarkCompleted(response.ID, answer, mentioned, extractions); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"ai_source":   source,
		"prompt_id":   prompt.ID,
		"response_id": response.ID,
		"mentions":    len(mentioned),
	}).Info("Prompt processed")

	return nil
}
