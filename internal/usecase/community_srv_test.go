package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommunityService_FAQs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newSeededService(t, false)
	mentor := mentorIdentity("ana")

	groups, err := svc.Community.ListFAQs(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, groups, 5)
	assert.Equal(t, "Skills & Requirements", groups[0].Category)

	_, err = svc.Community.AddFAQ(ctx, menteeIdentity("mihai"), &request.CreateFAQRequest{
		Question: "What should I study first?",
		Category: "Education",
	})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = svc.Community.AddFAQ(ctx, mentor, &request.CreateFAQRequest{Question: "Why?", Category: "Education"})
	assert.ErrorIs(t, err, entity.ErrValidation)

	faq, err := svc.Community.AddFAQ(ctx, mentor, &request.CreateFAQRequest{
		Question: "What should I study first?",
		Category: "Education",
	})
	require.NoError(t, err)
	assert.False(t, faq.IsCommon)
	require.NotNil(t, faq.MentorID)
	assert.Equal(t, mentor.UserID.String(), *faq.MentorID)

	withMentor, err := svc.Community.ListFAQs(ctx, mentor.UserID.String(), "Education")
	require.NoError(t, err)
	require.Len(t, withMentor, 1)
	require.Len(t, withMentor[0].FAQs, 2)
	ids := []string{withMentor[0].FAQs[0].ID, withMentor[0].FAQs[1].ID}
	assert.Contains(t, ids, faq.ID)

	// another mentor's questions stay out of the common list
	commonOnly, err := svc.Community.ListFAQs(ctx, uuid.NewString(), "Education")
	require.NoError(t, err)
	require.Len(t, commonOnly, 1)
	assert.Len(t, commonOnly[0].FAQs, 1)
}

func TestCommunityService_Articles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newSeededService(t, false)
	mentor := mentorIdentity("ana")

	articles, err := svc.Community.ListArticles(ctx, "", "", 0)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Breaking into Tech: A Romanian Student's Guide", articles[0].Title)
	assert.Empty(t, articles[0].Content)
	assert.Equal(t, 5, articles[0].ReadTime)

	marketing, err := svc.Community.ListArticles(ctx, "Marketing", "", 0)
	require.NoError(t, err)
	require.Len(t, marketing, 1)
	assert.Equal(t, 7, marketing[0].ReadTime)

	full, err := svc.Community.GetArticle(ctx, articles[1].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, full.Content)

	_, err = svc.Community.GetArticle(ctx, uuid.NewString())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	body := strings.Repeat("word ", 250)
	req := &request.CreateArticleRequest{
		Title:    "Preparing for your first interview",
		Excerpt:  "What to expect and how to get ready for it.",
		Content:  body,
		Category: "Career",
		Tags:     []string{"Interviews"},
	}

	_, err = svc.Community.CreateArticle(ctx, menteeIdentity("mihai"), req)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	created, err := svc.Community.CreateArticle(ctx, mentor, req)
	require.NoError(t, err)
	assert.Equal(t, 2, created.ReadTime)
	assert.Equal(t, mentor.UserID.String(), created.AuthorID)
	assert.Equal(t, body, created.Content)

	latest, err := svc.Community.ListArticles(ctx, "", "", 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, created.ID, latest[0].ID)

	byAuthor, err := svc.Community.ListArticles(ctx, "", mentor.UserID.String(), 0)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, created.ID, byAuthor[0].ID)
}

func TestReadTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "one word", content: "hello", want: 1},
		{name: "exactly one minute", content: strings.Repeat("w ", 200), want: 1},
		{name: "rounds up", content: strings.Repeat("w ", 201), want: 2},
		{name: "collapses whitespace", content: "a \n\t b   c", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadTime(tt.content))
		})
	}
}

// completedBooking runs a booking through to completed and returns it.
func completedBooking(t *testing.T, svc *Service, mentor, mentee entity.Identity, date string) *response.BookingResponse {
	t.Helper()
	booking := book(t, svc, mentee, createSlot(t, svc, mentor, date, "10:00", "11:00", 0).ID)
	_, err := setStatus(svc, mentor, booking.ID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	_, err = setStatus(svc, mentee, booking.ID, entity.BookingStatusCompleted)
	require.NoError(t, err)
	return booking
}

func TestReviewService_AddReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, Seed(ctx, repo, true, today, zap.NewNop()))

	user, err := repo.User.FindByEmail(ctx, "mentor@test.com")
	require.NoError(t, err)
	mentor := entity.Identity{UserID: user.ID, Name: user.Name, Email: user.Email, Role: entity.RoleMentor}
	mentee := menteeIdentity("mihai")

	pending := book(t, svc, mentee, createSlot(t, svc, mentor, "2025-06-01", "08:00", "09:00", 0).ID)
	_, err = svc.Review.AddReview(ctx, mentee, &request.CreateReviewRequest{BookingID: pending.ID, Rating: 5})
	assert.ErrorIs(t, err, entity.ErrConflict, "only completed bookings can be reviewed")

	first := completedBooking(t, svc, mentor, mentee, "2025-06-02")
	second := completedBooking(t, svc, mentor, mentee, "2025-06-03")

	_, err = svc.Review.AddReview(ctx, mentorIdentity("elena"), &request.CreateReviewRequest{BookingID: first.ID, Rating: 5})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = svc.Review.AddReview(ctx, menteeIdentity("radu"), &request.CreateReviewRequest{BookingID: first.ID, Rating: 5})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = svc.Review.AddReview(ctx, mentee, &request.CreateReviewRequest{BookingID: first.ID, Rating: 6})
	assert.ErrorIs(t, err, entity.ErrValidation)

	comment := "Very helpful"
	review, err := svc.Review.AddReview(ctx, mentee, &request.CreateReviewRequest{BookingID: first.ID, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, mentor.UserID.String(), review.MentorID)
	assert.Equal(t, 5, review.Rating)

	_, err = svc.Review.AddReview(ctx, mentee, &request.CreateReviewRequest{BookingID: first.ID, Rating: 4})
	assert.ErrorIs(t, err, entity.ErrConflict, "one review per booking")

	_, err = svc.Review.AddReview(ctx, mentee, &request.CreateReviewRequest{BookingID: second.ID, Rating: 4})
	require.NoError(t, err)

	profile, err := repo.Mentor.FindByUserID(ctx, mentor.UserID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, profile.Rating)
	assert.Equal(t, 2, profile.ReviewCount)

	// the directory id resolves to the same reviews
	summary, err := svc.Review.MentorReviews(ctx, profile.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalReviews)
	assert.Equal(t, 4.5, summary.AverageRating)
	require.Len(t, summary.Reviews, 2)

	empty, err := svc.Review.MentorReviews(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Zero(t, empty.TotalReviews)
	assert.Empty(t, empty.Reviews)
}

func TestNoteService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)
	mentor := mentorIdentity("ana")
	mentee := menteeIdentity("mihai")

	booking := book(t, svc, mentee, createSlot(t, svc, mentor, "2025-06-01", "10:00", "11:00", 0).ID)

	shared, err := svc.Note.AddNote(ctx, mentor, booking.ID, &request.CreateNoteRequest{Notes: "Agenda: portfolio review"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMentor, shared.AuthorRole)

	_, err = svc.Note.AddNote(ctx, mentee, booking.ID, &request.CreateNoteRequest{Notes: "Ask about internships", IsPrivate: true})
	require.NoError(t, err)

	_, err = svc.Note.AddNote(ctx, mentee, booking.ID, &request.CreateNoteRequest{Notes: "short"})
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = svc.Note.AddNote(ctx, menteeIdentity("radu"), booking.ID, &request.CreateNoteRequest{Notes: "Let me join this one"})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	menteeNotes, err := svc.Note.ListNotes(ctx, mentee, booking.ID)
	require.NoError(t, err)
	assert.Len(t, menteeNotes, 2)

	mentorNotes, err := svc.Note.ListNotes(ctx, mentor, booking.ID)
	require.NoError(t, err)
	require.Len(t, mentorNotes, 1)
	assert.Equal(t, shared.ID, mentorNotes[0].ID)

	_, err = svc.Note.ListNotes(ctx, mentee, uuid.NewString())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCommunityService_MentorContentByEitherID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, Seed(ctx, repo, true, today, zap.NewNop()))

	user, err := repo.User.FindByEmail(ctx, "mentor@test.com")
	require.NoError(t, err)
	profile, err := repo.Mentor.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotEqual(t, user.ID, profile.ID, "demo mentor owns a catalog entry with its own id")

	mentor := entity.Identity{UserID: user.ID, Name: user.Name, Email: user.Email, Role: entity.RoleMentor}
	_, err = svc.Community.AddFAQ(ctx, mentor, &request.CreateFAQRequest{
		Question: "Do you review CVs before the call?",
		Category: "Custom",
	})
	require.NoError(t, err)
	_, err = svc.Community.CreateArticle(ctx, mentor, &request.CreateArticleRequest{
		Title:    "Preparing for your first interview",
		Excerpt:  "What to expect and how to get ready for it.",
		Content:  strings.Repeat("word ", 120),
		Category: "Career",
	})
	require.NoError(t, err)
	createSlot(t, svc, mentor, "2025-05-02", "10:00", "11:00", 0)

	for name, id := range map[string]string{"directory id": profile.ID.String(), "account id": user.ID.String()} {
		t.Run(name, func(t *testing.T) {
			groups, err := svc.Community.ListFAQs(ctx, id, "Custom")
			require.NoError(t, err)
			require.Len(t, groups, 1)
			require.Len(t, groups[0].FAQs, 1)

			articles, err := svc.Community.ListArticles(ctx, "", id, 0)
			require.NoError(t, err)
			assert.Len(t, articles, 2, "seeded and new articles share one author")
			for _, a := range articles {
				assert.Equal(t, user.ID.String(), a.AuthorID)
			}

			slots, err := svc.Slot.ListAvailableSlots(ctx, &request.AvailableSlotsQuery{MentorID: id})
			require.NoError(t, err)
			assert.Len(t, slots, 1)

			reviews, err := svc.Review.MentorReviews(ctx, id)
			require.NoError(t, err)
			assert.Zero(t, reviews.TotalReviews)
		})
	}

	// a catalog entry without an account keeps its own id
	others, err := svc.Community.ListArticles(ctx, "Marketing", "", 0)
	require.NoError(t, err)
	require.Len(t, others, 1)
	byAuthor, err := svc.Community.ListArticles(ctx, "", others[0].AuthorID, 0)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)
}

func TestReviewService_ConcurrentReviewsKeepRating(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, Seed(ctx, repo, true, today, zap.NewNop()))

	user, err := repo.User.FindByEmail(ctx, "mentor@test.com")
	require.NoError(t, err)
	mentor := entity.Identity{UserID: user.ID, Name: user.Name, Email: user.Email, Role: entity.RoleMentor}

	const reviewers = 8
	type pair struct {
		mentee  entity.Identity
		booking string
	}
	pairs := make([]pair, 0, reviewers)
	for i := range reviewers {
		mentee := menteeIdentity(fmt.Sprintf("mentee%d", i))
		booking := completedBooking(t, svc, mentor, mentee, fmt.Sprintf("2025-06-%02d", i+1))
		pairs = append(pairs, pair{mentee: mentee, booking: booking.ID})
	}

	var wg sync.WaitGroup
	errs := make(chan error, reviewers)
	for i, p := range pairs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rating := 3 + i%3
			_, err := svc.Review.AddReview(ctx, p.mentee, &request.CreateReviewRequest{BookingID: p.booking, Rating: rating})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	profile, err := repo.Mentor.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, reviewers, profile.ReviewCount)
	// ratings 3,4,5,3,4,5,3,4 average to 3.875
	assert.Equal(t, 3.9, profile.Rating)
}
