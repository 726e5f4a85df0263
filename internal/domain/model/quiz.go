package model

// Quiz is quiz metadata shown before a user starts playing.
type Quiz struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category"`
	DifficultyLevel  string `json:"difficultyLevel"`
	PointsReward     int    `json:"pointsReward,omitempty"`
	TimeLimitMinutes int    `json:"timeLimitMinutes,omitempty"`
}

// QuizQuestion is a single generated question. Options is a pipe-separated
// list in the order the backend produced it.
type QuizQuestion struct {
	ID            string `json:"id"`
	QuestionText  string `json:"questionText"`
	QuestionType  string `json:"questionType"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
	Difficulty    string `json:"difficulty"`
	Points        int    `json:"points"`
}

// QuizResult is the scored outcome of a quiz submission.
type QuizResult struct {
	Success      bool `json:"success"`
	Score        int  `json:"score"`
	PointsEarned int  `json:"pointsEarned"`
}
