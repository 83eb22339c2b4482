package response

import (
	"mentor-booking/internal/data/entity"
)

type MentorResponse struct {
	ID           string   `json:"id"`
	UserID       *string  `json:"user_id,omitempty"`
	Name         string   `json:"name"`
	JobTitle     string   `json:"job_title"`
	Company      string   `json:"company"`
	Bio          string   `json:"bio"`
	Expertise    []string `json:"expertise"`
	Industry     string   `json:"industry"`
	Experience   int      `json:"experience"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	Location     string   `json:"location"`
	Languages    []string `json:"languages"`
	MeetingTypes []string `json:"meeting_types"`
	Availability string   `json:"availability"`
	ProfileImage string   `json:"profile_image,omitempty"`
	MeetingFee   float64  `json:"meeting_fee"`
}

type FilterOptionsResponse struct {
	Industries []string `json:"industries"`
	Locations  []string `json:"locations"`
	Expertise  []string `json:"expertise"`
}

// ProfileResponse is the caller's own account, with the directory entry for mentors.
type ProfileResponse struct {
	UserResponse
	Mentor *MentorResponse `json:"mentor_profile,omitempty"`
}

func MentorToResponse(mentor *entity.MentorProfile) MentorResponse {
	resp := MentorResponse{
		ID:           mentor.ID.String(),
		Name:         mentor.Name,
		JobTitle:     mentor.JobTitle,
		Company:      mentor.Company,
		Bio:          mentor.Bio,
		Expertise:    nonNil(mentor.Expertise),
		Industry:     mentor.Industry,
		Experience:   mentor.Experience,
		Rating:       mentor.Rating,
		ReviewCount:  mentor.ReviewCount,
		Location:     mentor.Location,
		Languages:    nonNil(mentor.Languages),
		MeetingTypes: nonNil(mentor.MeetingTypes),
		Availability: mentor.Availability,
		ProfileImage: mentor.ProfileImage,
		MeetingFee:   mentor.MeetingFee,
	}
	if mentor.UserID != nil {
		id := mentor.UserID.String()
		resp.UserID = &id
	}
	return resp
}

func MentorsToResponse(mentors []*entity.MentorProfile) []MentorResponse {
	out := make([]MentorResponse, 0, len(mentors))
	for _, mentor := range mentors {
		out = append(out, MentorToResponse(mentor))
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
