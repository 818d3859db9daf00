package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"docdash/internal/client/llm"
	"docdash/internal/model"
	"docdash/internal/repository"
	"docdash/internal/storage"
)

// Summarizer is the slice of the LLM client the summary service needs.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxWords int) (llm.Result, error)
}

// SummaryService generates document summaries via the model API.
type SummaryService interface {
	// Summarize loads the document, reads a bounded prefix of its content
	// from object storage, and asks the model API for a summary. A failed
	// summary does not mutate the document record: summaries are derived,
	// documents are immutable once stored.
	Summarize(ctx context.Context, documentID string, maxWords int) (*model.Summary, error)
}

type summaryService struct {
	repo       repository.DocumentRepository
	store      storage.Storage
	llm        Summarizer
	maxContent int64
	now        func() time.Time
}

// NewSummaryService constructs a SummaryService. maxContent bounds how
// much document content is shipped upstream per request.
func NewSummaryService(repo repository.DocumentRepository, store storage.Storage, summarizer Summarizer, maxContent int64) SummaryService {
	if maxContent <= 0 {
		maxContent = 1 << 20
	}
	return &summaryService{
		repo:       repo,
		store:      store,
		llm:        summarizer,
		maxContent: maxContent,
		now:        time.Now,
	}
}

func (s *summaryService) Summarize(ctx context.Context, documentID string, maxWords int) (*model.Summary, error) {
	if documentID == "" {
		return nil, ErrIDRequired
	}
	if maxWords <= 0 {
		maxWords = 150
	}

	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, s.maxContent))
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	res, err := s.llm.Summarize(ctx, string(content), maxWords)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	return &model.Summary{
		DocumentID:  doc.ID,
		Text:        res.Summary,
		Model:       res.Model,
		Tokens:      res.Tokens,
		GeneratedAt: s.now().UTC(),
	}, nil
}
