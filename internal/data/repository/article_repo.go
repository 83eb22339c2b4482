package repository

import (
	"context"
	"sort"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	// Find returns matching articles newest first, at most filter.Limit when positive.
	Find(ctx context.Context, filter entity.ArticleFilter) ([]*entity.Article, error)
}

type articleRepository struct {
	store *MemoryStore
}

func NewArticleRepository(store *MemoryStore) ArticleRepository {
	return &articleRepository{store: store}
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.articles[article.ID] = cloneArticle(article)
	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	article, ok := r.store.articles[id]
	if !ok {
		return nil, nil
	}
	return cloneArticle(article), nil
}

func (r *articleRepository) Find(ctx context.Context, filter entity.ArticleFilter) ([]*entity.Article, error) {
	r.store.mu.RLock()
	articles := []*entity.Article{}
	for _, article := range r.store.articles {
		if filter.Category != "" && article.Category != filter.Category {
			continue
		}
		if filter.AuthorID != nil && article.AuthorID != *filter.AuthorID {
			continue
		}
		articles = append(articles, cloneArticle(article))
	}
	r.store.mu.RUnlock()

	sort.Slice(articles, func(i, j int) bool { return articles[i].CreatedAt.After(articles[j].CreatedAt) })

	if filter.Limit > 0 && len(articles) > filter.Limit {
		articles = articles[:filter.Limit]
	}
	return articles, nil
}
