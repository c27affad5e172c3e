package trivia

// Category is a display grouping for questions. Categories are read-only.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is the formatted record served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Difficulty bounds accepted on creation.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// QuestionPage is one page of a question listing.
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	Categories      []string
	CurrentCategory *int
}

// CreateQuestionRequest carries raw creation input. Category and Difficulty hold the
// textual form of whatever the client sent so the service can tell missing values from
// non-numeric ones.
type CreateQuestionRequest struct {
	Question   string
	Answer     string
	Category   string
	Difficulty string
}

// CreateResult acknowledges an insert.
type CreateResult struct {
	Question       Question
	TotalQuestions int
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Deleted        int
	TotalQuestions int
}

// QuizRequest is the full client-side session state. The server keeps none, so every call
// must carry the complete list of ids already served.
type QuizRequest struct {
	CategoryID        *int
	PreviousQuestions []int
}

func categoryLabels(categories []Category) []string {
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Type
	}
	return labels
}
