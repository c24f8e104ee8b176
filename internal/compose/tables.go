package compose

import "github.com/learnzy/learnzy/internal/plan"

// difficultyTechniques lists canonical study techniques per tier.
var difficultyTechniques = map[plan.Difficulty][]string{
	plan.DifficultyBeginner:     {"Active Reading", "Note Taking", "Flashcards", "Summary Writing"},
	plan.DifficultyIntermediate: {"Feynman Technique", "Mind Mapping", "Practice Problems", "Peer Discussion"},
	plan.DifficultyAdvanced:     {"Deep Work Sessions", "Research Papers", "Project-Based Learning", "Teaching Others"},
	plan.DifficultyExpert:       {"Original Research", "Advanced Problem Solving", "Critical Analysis", "Innovation Projects"},
}

// styleTechniques lists techniques suited to each learning style.
var styleTechniques = map[plan.LearningStyle][]string{
	plan.StyleVisual:      {"Diagrams", "Color Coding", "Video Tutorials"},
	plan.StyleAuditory:    {"Podcasts", "Discussions", "Read Aloud"},
	plan.StyleKinesthetic: {"Hands-on Practice", "Real Projects", "Lab Work"},
	plan.StyleReading:     {"Textbooks", "Articles", "Documentation"},
}

// styleResources suggests learning resources per style. Unrecognized
// styles fall back to the visual list.
var styleResources = map[plan.LearningStyle][]string{
	plan.StyleVisual:      {"YouTube tutorials", "Infographics", "Interactive simulations"},
	plan.StyleAuditory:    {"Podcasts", "Audio lectures", "Study group discussions"},
	plan.StyleKinesthetic: {"Hands-on projects", "Lab exercises", "Real-world applications"},
	plan.StyleReading:     {"Textbook chapters", "Research papers", "Online documentation"},
}

// subtopicSuffixes are the per-goal session subtopic templates, each
// rendered as "{topic} - {suffix}".
var subtopicSuffixes = map[plan.Goal][]string{
	plan.GoalExamPrep:    {"Core Concepts", "Practice Problems", "Common Mistakes"},
	plan.GoalDeepMastery: {"Theoretical Foundation", "Advanced Applications", "Research & Innovation"},
	plan.GoalQuickReview: {"Key Points Review", "Quick Quiz"},
}

// defaultSubtopicSuffixes covers goals without a dedicated template.
var defaultSubtopicSuffixes = []string{"Introduction", "Practice", "Application"}

// preSessionPreps rotate by day number.
var preSessionPreps = []string{
	"Review notes from previous %s session",
	"Set up study environment (minimize distractions)",
	"Gather all materials and resources",
	"Do a 5-minute breathing exercise to focus",
	"Set specific goals for this session",
}

// postSessionReviews rotate by day number.
var postSessionReviews = []string{
	"Summarize key learnings in your own words",
	"Create flashcards for important concepts",
	"Teach the concept to someone else (Feynman Technique)",
	"Identify 3 things you learned and 1 question you still have",
	"Update your study notes with new insights",
}
