package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/response"

	"go.uber.org/zap"
)

const defaultRecommendLimit = 3

type MentorService interface {
	ListMentors(ctx context.Context, filter entity.MentorFilter) ([]response.MentorResponse, error)
	GetMentor(ctx context.Context, mentorID string) (*response.MentorResponse, error)
	// RecommendMentors ranks mentors by how many interests match their
	// expertise, then by rating. limit <= 0 means 3.
	RecommendMentors(ctx context.Context, interests []string, limit int) ([]response.MentorResponse, error)
	FilterOptions(ctx context.Context) (*response.FilterOptionsResponse, error)
}

type mentorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMentorService(repo *repository.Repository, log *zap.Logger) MentorService {
	return &mentorService{
		repo: repo,
		log:  log.With(zap.String("service", "mentor")),
	}
}

func (s *mentorService) ListMentors(ctx context.Context, filter entity.MentorFilter) ([]response.MentorResponse, error) {
	switch filter.SortBy {
	case "", entity.MentorSortRating, entity.MentorSortExperience, entity.MentorSortReviews:
	default:
		return nil, entity.NewValidationError("sortBy", "Must be one of: rating, experience, reviews")
	}

	filter.Search = strings.TrimSpace(filter.Search)

	mentors, err := s.repo.Mentor.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	return response.MentorsToResponse(mentors), nil
}

func (s *mentorService) GetMentor(ctx context.Context, mentorID string) (*response.MentorResponse, error) {
	id, err := parseID("id", mentorID)
	if err != nil {
		return nil, err
	}

	mentor, err := s.repo.Mentor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find mentor: %w", err)
	}
	if mentor == nil {
		return nil, fmt.Errorf("mentor %s: %w", mentorID, entity.ErrNotFound)
	}

	resp := response.MentorToResponse(mentor)
	return &resp, nil
}

func (s *mentorService) RecommendMentors(ctx context.Context, interests []string, limit int) ([]response.MentorResponse, error) {
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	mentors, err := s.repo.Mentor.Find(ctx, entity.MentorFilter{})
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	type scored struct {
		mentor *entity.MentorProfile
		score  int
	}

	candidates := make([]scored, 0, len(mentors))
	for _, m := range mentors {
		score := matchScore(interests, m.Expertise)
		if len(interests) > 0 && score == 0 {
			continue
		}
		candidates = append(candidates, scored{mentor: m, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].mentor.Rating > candidates[j].mentor.Rating
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]response.MentorResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, response.MentorToResponse(c.mentor))
	}
	return out, nil
}

// matchScore counts interest/expertise pairs where either contains the other.
func matchScore(interests, expertise []string) int {
	score := 0
	for _, interest := range interests {
		i := strings.ToLower(strings.TrimSpace(interest))
		if i == "" {
			continue
		}
		for _, exp := range expertise {
			e := strings.ToLower(exp)
			if strings.Contains(e, i) || strings.Contains(i, e) {
				score++
			}
		}
	}
	return score
}

func (s *mentorService) FilterOptions(ctx context.Context) (*response.FilterOptionsResponse, error) {
	mentors, err := s.repo.Mentor.Find(ctx, entity.MentorFilter{})
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	industries := map[string]struct{}{}
	locations := map[string]struct{}{}
	expertise := map[string]struct{}{}
	for _, m := range mentors {
		addNonEmpty(industries, m.Industry)
		addNonEmpty(locations, m.Location)
		for _, e := range m.Expertise {
			addNonEmpty(expertise, e)
		}
	}

	return &response.FilterOptionsResponse{
		Industries: sortedKeys(industries),
		Locations:  sortedKeys(locations),
		Expertise:  sortedKeys(expertise),
	}, nil
}

func addNonEmpty(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
