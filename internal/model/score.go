package model

// Submission 一次作答。Answers 按题目顺序对齐；ByQuestion 以题目ID为键（二选一）
type Submission struct {
	Answers    []string          `json:"answers,omitempty"`
	ByQuestion map[string]string `json:"answersById,omitempty"`
}

// QuestionResult is the per-question detail of a scored submission. Index is 1-based.
type QuestionResult struct {
	Index      int    `json:"questionIndex"`
	QuestionID string `json:"questionId"`
	Submitted  string `json:"userAnswer"`
	Correct    string `json:"correctAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// ScoreResult 评分结果，每次提交重新生成
type ScoreResult struct {
	TotalScore     int              `json:"totalScore"`
	MaxScore       int              `json:"maxScore"`
	Percentage     int              `json:"percentage"`
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	CategoryTotals map[string]int   `json:"categoryScores"`
	Details        []QuestionResult `json:"detailedResults,omitempty"`
}
