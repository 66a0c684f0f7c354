package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillcal_backend/internal/model"
)

func threeQuestions() []model.Question {
	return []model.Question{
		{ID: "1", Options: []string{"A", "B"}, CorrectAnswer: "A", Points: 10, Category: "programming"},
		{ID: "2", Options: []string{"B", "X"}, CorrectAnswer: "B", Points: 10, Category: "programming"},
		{ID: "3", Options: []string{"C", "D"}, CorrectAnswer: "C", Points: 10, Category: "ai-ml"},
	}
}

func TestScore_ConcreteScenario(t *testing.T) {
	res := Score(threeQuestions(), []string{"A", "X", "C"})

	assert.Equal(t, 20, res.TotalScore)
	assert.Equal(t, 30, res.MaxScore)
	assert.Equal(t, 67, res.Percentage)
	assert.Equal(t, 2, res.CorrectCount)
	assert.Equal(t, 3, res.TotalQuestions)
	assert.Equal(t, map[string]int{"programming": 10, "ai-ml": 10}, res.CategoryTotals)
	assert.Equal(t, model.SkillAdvanced, Classify(res.Percentage))

	require.Len(t, res.Details, 3)
	assert.Equal(t, model.QuestionResult{Index: 2, QuestionID: "2", Submitted: "X", Correct: "B", IsCorrect: false}, res.Details[1])
}

func TestScore_EmptyQuestionSet(t *testing.T) {
	res := Score(nil, nil)
	assert.Equal(t, 0, res.MaxScore)
	assert.Equal(t, 0, res.TotalScore)
	assert.Equal(t, 0, res.Percentage)
	assert.NotNil(t, res.CategoryTotals)
}

func TestScore_MissingTrailingAnswersAreWrong(t *testing.T) {
	res := Score(threeQuestions(), []string{"A"})
	assert.Equal(t, 10, res.TotalScore)
	assert.Equal(t, 30, res.MaxScore)
	assert.Equal(t, 33, res.Percentage)
	assert.Equal(t, "", res.Details[2].Submitted)
}

func TestScore_ExactComparison(t *testing.T) {
	res := Score(threeQuestions(), []string{"a", "B ", " C"})
	assert.Equal(t, 0, res.TotalScore)
	assert.Equal(t, 0, res.CorrectCount)
}

func TestScore_CategoryCreatedOnFirstSight(t *testing.T) {
	qs := []model.Question{
		{ID: "q1", CorrectAnswer: "yes", Points: 5, Category: "someNewTag"},
	}
	res := Score(qs, []string{"no"})
	v, ok := res.CategoryTotals["someNewTag"]
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestScore_Idempotent(t *testing.T) {
	qs := threeQuestions()
	answers := []string{"A", "X", "C"}
	assert.Equal(t, Score(qs, answers), Score(qs, answers))
}

func TestScore_Bounds(t *testing.T) {
	qs := threeQuestions()
	cases := [][]string{nil, {}, {"A"}, {"A", "B", "C"}, {"x", "y", "z"}, {"A", "", "C"}}
	for _, answers := range cases {
		res := Score(qs, answers)
		assert.LessOrEqual(t, res.TotalScore, res.MaxScore)
		assert.GreaterOrEqual(t, res.Percentage, 0)
		assert.LessOrEqual(t, res.Percentage, 100)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, max, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{3, 8, 38}, // 37.5 rounds up
		{30, 30, 100},
		{35, 60, 58},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.score, tt.max), "Percentage(%d, %d)", tt.score, tt.max)
	}
}

func TestAlign_Positional(t *testing.T) {
	qs := threeQuestions()

	got, err := Align(qs, &model.Submission{Answers: []string{"A"}}, AnswerModePositional)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "", ""}, got)

	got, err = Align(qs, &model.Submission{Answers: []string{}}, AnswerModePositional)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, got)

	_, err = Align(qs, &model.Submission{Answers: []string{"A", "B", "C", "D"}}, AnswerModePositional)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = Align(qs, &model.Submission{}, AnswerModePositional)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = Align(qs, nil, AnswerModePositional)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestAlign_Keyed(t *testing.T) {
	qs := threeQuestions()

	got, err := Align(qs, &model.Submission{ByQuestion: map[string]string{"3": "C", "1": "A"}}, AnswerModeKeyed)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "", "C"}, got)

	_, err = Align(qs, &model.Submission{ByQuestion: map[string]string{"99": "A"}}, AnswerModeKeyed)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = Align(qs, &model.Submission{Answers: []string{"A"}}, AnswerModeKeyed)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestAlign_BothFormsRejected(t *testing.T) {
	sub := &model.Submission{Answers: []string{"A"}, ByQuestion: map[string]string{"1": "A"}}
	_, err := Align(threeQuestions(), sub, AnswerModePositional)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestAlign_KeyedMatchesPositionalScore(t *testing.T) {
	qs := threeQuestions()
	pos, err := Align(qs, &model.Submission{Answers: []string{"A", "X", "C"}}, AnswerModePositional)
	require.NoError(t, err)
	keyed, err := Align(qs, &model.Submission{ByQuestion: map[string]string{"1": "A", "2": "X", "3": "C"}}, AnswerModeKeyed)
	require.NoError(t, err)
	assert.Equal(t, Score(qs, pos), Score(qs, keyed))
}
