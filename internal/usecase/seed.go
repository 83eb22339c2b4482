package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DemoPassword = "password123"

type demoUser struct {
	email string
	name  string
	role  entity.UserRole
}

var demoUsers = []demoUser{
	{email: "mentor@test.com", name: "Ana Popescu", role: entity.RoleMentor},
	{email: "mentee@test.com", name: "Mihai Ionescu", role: entity.RoleMentee},
}

// Seed fills the directory and community catalog. With demo set it also
// creates the demo accounts, and the demo mentor owns the first catalog entry.
func Seed(ctx context.Context, repo *repository.Repository, demo bool, now time.Time, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	accounts := map[string]*entity.User{}
	if demo {
		for _, d := range demoUsers {
			user, err := seedUser(ctx, repo.User, d, now)
			if err != nil {
				return err
			}
			accounts[d.email] = user
		}
	}

	mentors := catalogMentors(now)
	if owner, ok := accounts["mentor@test.com"]; ok {
		ownerID := owner.ID
		mentors[0].UserID = &ownerID
	}
	for _, m := range mentors {
		if err := repo.Mentor.Create(ctx, m); err != nil {
			return fmt.Errorf("seed mentor %s: %w", m.Name, err)
		}
	}

	for _, faq := range commonFAQs(now) {
		if err := repo.FAQ.Create(ctx, faq); err != nil {
			return fmt.Errorf("seed faq: %w", err)
		}
	}

	for _, article := range sampleArticles(mentors) {
		if err := repo.Article.Create(ctx, article); err != nil {
			return fmt.Errorf("seed article: %w", err)
		}
	}

	log.Info("Catalog seeded",
		zap.Int("mentors", len(mentors)),
		zap.Int("demo_accounts", len(accounts)),
	)
	return nil
}

// seedUser creates a demo account or returns the one a previous run left behind.
func seedUser(ctx context.Context, users repository.UserRepository, d demoUser, now time.Time) (*entity.User, error) {
	hashed, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	user := &entity.User{
		Base:         entity.NewBase(now),
		Email:        d.email,
		Name:         d.name,
		PasswordHash: hashed,
		Role:         d.role,
	}

	err = users.Create(ctx, user)
	if errors.Is(err, entity.ErrConflict) {
		return users.FindByEmail(ctx, d.email)
	}
	if err != nil {
		return nil, fmt.Errorf("seed user %s: %w", d.email, err)
	}
	return user, nil
}

func catalogMentors(now time.Time) []*entity.MentorProfile {
	// distinct creation times keep the directory order stable
	at := func(i int) entity.Base {
		return entity.NewBase(now.Add(time.Duration(i) * time.Millisecond))
	}

	return []*entity.MentorProfile{
		{
			Base:         at(0),
			Name:         "Ana Popescu",
			JobTitle:     "Senior Software Engineer",
			Company:      "Google Romania",
			Bio:          "Passionate about helping students discover the world of technology. 8+ years experience in full-stack development.",
			Expertise:    []string{"Software Development", "Web Development", "Career Guidance", "Technical Interviews"},
			Industry:     "Technology",
			Experience:   8,
			Rating:       4.9,
			ReviewCount:  24,
			Location:     "Bucharest",
			Languages:    []string{"Romanian", "English"},
			MeetingTypes: []string{"Career Guidance", "Technical Skills", "Interview Prep"},
			Availability: "Weekday evenings",
			ProfileImage: "/professional-woman-software-engineer.png",
		},
		{
			Base:         at(1),
			Name:         "Mihai Ionescu",
			JobTitle:     "Marketing Director",
			Company:      "eMAG",
			Bio:          "Marketing professional with 10+ years helping brands grow. Love mentoring students interested in marketing careers.",
			Expertise:    []string{"Digital Marketing", "Brand Strategy", "Social Media", "Career Development"},
			Industry:     "Marketing",
			Experience:   10,
			Rating:       4.8,
			ReviewCount:  18,
			Location:     "Bucharest",
			Languages:    []string{"Romanian", "English"},
			MeetingTypes: []string{"Career Guidance", "Marketing Strategy", "Personal Branding"},
			Availability: "Flexible schedule",
			ProfileImage: "/professional-man-marketing-director.png",
		},
		{
			Base:         at(2),
			Name:         "Elena Radu",
			JobTitle:     "Product Manager",
			Company:      "UiPath",
			Bio:          "Product management expert passionate about innovation and helping students understand tech product development.",
			Expertise:    []string{"Product Management", "UX Design", "Agile", "Leadership"},
			Industry:     "Technology",
			Experience:   6,
			Rating:       4.9,
			ReviewCount:  31,
			Location:     "Cluj-Napoca",
			Languages:    []string{"Romanian", "English", "German"},
			MeetingTypes: []string{"Product Strategy", "Career Guidance", "Leadership Skills"},
			Availability: "Weekend mornings",
			ProfileImage: "/professional-woman-product-manager.png",
		},
	}
}

func commonFAQs(now time.Time) []*entity.FAQ {
	questions := []struct{ question, category string }{
		{"What skills are most important for your job?", "Skills & Requirements"},
		{"What does a typical day look like in your role?", "Daily Work"},
		{"How did you get started in this career?", "Career Path"},
		{"What education or certifications do you recommend?", "Education"},
		{"What are the biggest challenges in your field?", "Challenges"},
	}

	faqs := make([]*entity.FAQ, 0, len(questions))
	for i, q := range questions {
		faqs = append(faqs, &entity.FAQ{
			BaseSimple: entity.NewBaseSimple(now.Add(time.Duration(i) * time.Millisecond)),
			Question:   q.question,
			Category:   q.category,
			IsCommon:   true,
		})
	}
	return faqs
}

func sampleArticles(mentors []*entity.MentorProfile) []*entity.Article {
	techContent := "Technology is one of the fastest-growing industries in Romania. " +
		"Start with the fundamentals of programming, build small projects you can show, " +
		"join local communities and hackathons, and look for internships early."
	marketingContent := "The marketing landscape in Romania has evolved significantly. " +
		"Digital channels now dominate, so learn analytics and content strategy, " +
		"build a personal brand, and practice with real campaigns for student organisations."

	return []*entity.Article{
		{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			Title:      "Breaking into Tech: A Romanian Student's Guide",
			Excerpt:    "Essential steps for Romanian high school students interested in technology careers.",
			Content:    techContent,
			AuthorID:   mentors[0].AccountID(),
			AuthorName: mentors[0].Name,
			Category:   "Technology",
			Tags:       []string{"Technology", "Career Advice", "Students"},
			ReadTime:   5,
		},
		{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			Title:      "Marketing Careers in Romania: What You Need to Know",
			Excerpt:    "Insights into the marketing industry and how to build a successful career.",
			Content:    marketingContent,
			AuthorID:   mentors[1].AccountID(),
			AuthorName: mentors[1].Name,
			Category:   "Marketing",
			Tags:       []string{"Marketing", "Digital Marketing", "Career Growth"},
			ReadTime:   7,
		},
	}
}
