package meeting

// CreateMeetingRequest represents a transcript submission
type CreateMeetingRequest struct {
	MeetingText  string   `json:"meeting_text" validate:"required,min=1"`
	Participants []string `json:"participants"`
	MeetingTitle *string  `json:"meeting_title,omitempty" validate:"omitempty,max=255"`
	MeetingDate  *string  `json:"meeting_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ListMeetingsRequest represents query parameters for listing meetings
// ListMeetingsRequest carries pagination query parameters. Out-of-range
// values are clamped rather than rejected.
type ListMeetingsRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}
