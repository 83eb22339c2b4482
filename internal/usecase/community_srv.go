package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultArticleLimit = 10
	wordsPerMinute      = 200
)

type CommunityService interface {
	// ListFAQs returns common questions plus the given mentor's own, grouped by category.
	ListFAQs(ctx context.Context, mentorID, category string) ([]response.FAQGroupResponse, error)
	AddFAQ(ctx context.Context, identity entity.Identity, req *request.CreateFAQRequest) (*response.FAQResponse, error)
	ListArticles(ctx context.Context, category, authorID string, limit int) ([]response.ArticleResponse, error)
	GetArticle(ctx context.Context, articleID string) (*response.ArticleResponse, error)
	CreateArticle(ctx context.Context, identity entity.Identity, req *request.CreateArticleRequest) (*response.ArticleResponse, error)
}

type communityService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewCommunityService(repo *repository.Repository, now Clock, log *zap.Logger) CommunityService {
	return &communityService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "community")),
	}
}

func (s *communityService) ListFAQs(ctx context.Context, mentorID, category string) ([]response.FAQGroupResponse, error) {
	var mentor *uuid.UUID
	if mentorID != "" {
		id, err := parseID("mentor_id", mentorID)
		if err != nil {
			return nil, err
		}
		if id, err = mentorAccountID(ctx, s.repo.Mentor, id); err != nil {
			return nil, err
		}
		mentor = &id
	}

	faqs, err := s.repo.FAQ.FindVisible(ctx, mentor, category)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return response.GroupFAQs(faqs), nil
}

func (s *communityService) AddFAQ(ctx context.Context, identity entity.Identity, req *request.CreateFAQRequest) (*response.FAQResponse, error) {
	if err := requireRole(identity, entity.RoleMentor, "add FAQs"); err != nil {
		return nil, err
	}
	if err := validate(s.log, "Add FAQ", req); err != nil {
		return nil, err
	}

	mentorID := identity.UserID
	faq := &entity.FAQ{
		BaseSimple: entity.NewBaseSimple(s.now()),
		Question:   strings.TrimSpace(req.Question),
		Category:   strings.TrimSpace(req.Category),
		MentorID:   &mentorID,
	}

	if err := s.repo.FAQ.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}

	s.log.Info("FAQ added", zap.String("faq_id", faq.ID.String()), zap.String("mentor_id", mentorID.String()))

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *communityService) ListArticles(ctx context.Context, category, authorID string, limit int) ([]response.ArticleResponse, error) {
	filter := entity.ArticleFilter{Category: category, Limit: limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultArticleLimit
	}
	if authorID != "" {
		id, err := parseID("author_id", authorID)
		if err != nil {
			return nil, err
		}
		if id, err = mentorAccountID(ctx, s.repo.Mentor, id); err != nil {
			return nil, err
		}
		filter.AuthorID = &id
	}

	articles, err := s.repo.Article.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return response.ArticlesToResponse(articles), nil
}

func (s *communityService) GetArticle(ctx context.Context, articleID string) (*response.ArticleResponse, error) {
	id, err := parseID("id", articleID)
	if err != nil {
		return nil, err
	}

	article, err := s.repo.Article.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", articleID, entity.ErrNotFound)
	}

	resp := response.ArticleToResponse(article, true)
	return &resp, nil
}

func (s *communityService) CreateArticle(ctx context.Context, identity entity.Identity, req *request.CreateArticleRequest) (*response.ArticleResponse, error) {
	if err := requireRole(identity, entity.RoleMentor, "publish articles"); err != nil {
		return nil, err
	}
	if err := validate(s.log, "Create article", req); err != nil {
		return nil, err
	}

	article := &entity.Article{
		BaseSimple: entity.NewBaseSimple(s.now()),
		Title:      strings.TrimSpace(req.Title),
		Excerpt:    strings.TrimSpace(req.Excerpt),
		Content:    req.Content,
		AuthorID:   identity.UserID,
		AuthorName: identity.Name,
		Category:   strings.TrimSpace(req.Category),
		Tags:       slices.Clone(req.Tags),
		ReadTime:   ReadTime(req.Content),
	}

	if err := s.repo.Article.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info("Article published",
		zap.String("article_id", article.ID.String()),
		zap.String("author_id", article.AuthorID.String()),
		zap.Int("read_time", article.ReadTime),
	)

	resp := response.ArticleToResponse(article, true)
	return &resp, nil
}

// ReadTime estimates reading minutes at 200 words per minute, rounded up.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
