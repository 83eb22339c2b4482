package repository

import (
	"context"
	"sort"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	// FindVisible returns common FAQs plus, when mentorID is set, that mentor's
	// own questions. An empty category matches all.
	FindVisible(ctx context.Context, mentorID *uuid.UUID, category string) ([]*entity.FAQ, error)
}

type faqRepository struct {
	store *MemoryStore
}

func NewFAQRepository(store *MemoryStore) FAQRepository {
	return &faqRepository{store: store}
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.faqs[faq.ID] = cloneFAQ(faq)
	return nil
}

func (r *faqRepository) FindVisible(ctx context.Context, mentorID *uuid.UUID, category string) ([]*entity.FAQ, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	faqs := []*entity.FAQ{}
	for _, faq := range r.store.faqs {
		owned := mentorID != nil && faq.MentorID != nil && *faq.MentorID == *mentorID
		if !faq.IsCommon && !owned {
			continue
		}
		if category != "" && faq.Category != category {
			continue
		}
		faqs = append(faqs, cloneFAQ(faq))
	}

	sort.Slice(faqs, func(i, j int) bool { return faqs[i].CreatedAt.Before(faqs[j].CreatedAt) })
	return faqs, nil
}
