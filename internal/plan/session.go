package plan

// DateLayout is the calendar-date format used throughout persisted plans.
const DateLayout = "2006-01-02"

// Break is one scheduled pause inside a session. AfterMinutes counts
// minutes of work completed, not wall-clock time.
type Break struct {
	AfterMinutes    int       `json:"after_minutes"`
	DurationMinutes int       `json:"duration_minutes"`
	Type            BreakType `json:"type"`
}

// Session is one calendar day's study unit. The generation engine never
// mutates a session after creation; Completed, Notes and CompletedAt
// change only through the store's completion-update contract.
type Session struct {
	Date                string     `json:"date"`
	TimeSlot            string     `json:"time_slot"`
	DurationMinutes     int        `json:"duration_minutes"`
	Topic               string     `json:"topic"`
	Subtopics           []string   `json:"subtopics"`
	Difficulty          Difficulty `json:"difficulty"`
	StudyTechniques     []string   `json:"study_techniques"`
	Breaks              []Break    `json:"breaks"`
	Resources           []string   `json:"resources"`
	Goals               []string   `json:"goals"`
	PreSessionPrep      string     `json:"pre_session_prep"`
	PostSessionReview   string     `json:"post_session_review"`
	EstimatedFocusLevel FocusLevel `json:"estimated_focus_level"`
	Completed           bool       `json:"completed"`
	Notes               string     `json:"notes"`
	CompletedAt         *string    `json:"completed_at"`
}

// Milestone is a fixed-fraction checkpoint of the plan's duration.
type Milestone struct {
	Day         int    `json:"day"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Celebration string `json:"celebration"`
}
