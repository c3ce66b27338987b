package dto

// GenerateQuizRequest is the body of a generation request
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Topic         string `json:"topic" example:"Photosynthesis"`
	GradeLevel    string `json:"gradeLevel" example:"Grade 6"`
	Difficulty    string `json:"difficulty" example:"Medium"`
	QuestionCount int    `json:"questionCount" example:"5"`
}

// QuestionResponse is a single multiple-choice question.
// CorrectAnswer and Justification are omitted when answers are hidden.
type QuestionResponse struct {
	ID            string `json:"id"`
	OrdinalIndex  int    `json:"ordinalIndex"`
	Text          string `json:"text"`
	AlternativeA  string `json:"alternativeA"`
	AlternativeB  string `json:"alternativeB"`
	AlternativeC  string `json:"alternativeC"`
	AlternativeD  string `json:"alternativeD"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	Justification string `json:"justification,omitempty"`
	Difficulty    string `json:"difficulty"`
}

// ValidationResultResponse is the reviewer's advisory verdict on one question
type ValidationResultResponse struct {
	Index                 int      `json:"index"`
	Valid                 bool     `json:"valid"`
	Issues                []string `json:"issues"`
	CorrectAnswerVerified bool     `json:"correctAnswerVerified"`
}

// GenerateQuizResponse is returned after a quiz has been generated and stored
// @Description Generated quiz with advisory validation results
type GenerateQuizResponse struct {
	QuizID            string                     `json:"quizId"`
	Topic             string                     `json:"topic"`
	GradeLevel        string                     `json:"gradeLevel"`
	Difficulty        string                     `json:"difficulty"`
	Questions         []QuestionResponse         `json:"questions"`
	Validation        []ValidationResultResponse `json:"validation,omitempty"`
	ValidationWarning string                     `json:"validationWarning,omitempty"`
}

// QuestionsResponse lists the stored questions of a quiz
type QuestionsResponse struct {
	QuizID    string             `json:"quizId"`
	Questions []QuestionResponse `json:"questions"`
}

// AnswerRequest is one submitted answer
type AnswerRequest struct {
	QuestionID        string `json:"questionId"`
	ChosenAlternative string `json:"chosenAlternative" example:"B"`
}

// ScoreRequest is the body of a scoring request
// @Description Request body for scoring a user's answers
type ScoreRequest struct {
	UserID  string          `json:"userId"`
	QuizID  string          `json:"quizId"`
	Answers []AnswerRequest `json:"answers"`
}

// ScoreResponse reports the points awarded and the user's new total
type ScoreResponse struct {
	PointsAwarded   int `json:"pointsAwarded"`
	UserTotalPoints int `json:"userTotalPoints"`
	CorrectAnswers  int `json:"correctAnswers"`
	IgnoredAnswers  int `json:"ignoredAnswers"`
}
