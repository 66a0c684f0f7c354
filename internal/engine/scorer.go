// Package engine implements assessment scoring, skill classification,
// profile updates and content recommendation. Every function here is pure
// and safe for concurrent use.
package engine

import (
	"fmt"

	"skillcal_backend/internal/model"
)

// Align 将提交的答案按题目顺序对齐，未作答的题目记为空串，空串不会匹配正确答案
func Align(questions []model.Question, sub *model.Submission, mode AnswerMode) ([]string, error) {
	if sub == nil {
		return nil, fmt.Errorf("%w: no answers", ErrInvalidSubmission)
	}
	if sub.Answers != nil && sub.ByQuestion != nil {
		return nil, fmt.Errorf("%w: answers and answersById are mutually exclusive", ErrInvalidSubmission)
	}

	switch mode {
	case AnswerModeKeyed:
		if sub.ByQuestion == nil {
			return nil, fmt.Errorf("%w: answersById is required", ErrInvalidSubmission)
		}
		index := make(map[string]int, len(questions))
		for i, q := range questions {
			index[q.ID] = i
		}
		aligned := make([]string, len(questions))
		for id, ans := range sub.ByQuestion {
			i, ok := index[id]
			if !ok {
				return nil, fmt.Errorf("%w: unknown question %q", ErrInvalidSubmission, id)
			}
			aligned[i] = ans
		}
		return aligned, nil

	case AnswerModePositional, "":
		if sub.Answers == nil {
			return nil, fmt.Errorf("%w: answers is required", ErrInvalidSubmission)
		}
		if len(sub.Answers) > len(questions) {
			return nil, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidSubmission, len(sub.Answers), len(questions))
		}
		aligned := make([]string, len(questions))
		copy(aligned, sub.Answers)
		return aligned, nil
	}
	return nil, fmt.Errorf("%w: answer mode %q", ErrUnknownPolicy, mode)
}

// Score 按位置逐题评分，精确比较（区分大小写，不去空格），缺失的答案算错。
// MaxScore 只取决于题目本身
func Score(questions []model.Question, answers []string) model.ScoreResult {
	res := model.ScoreResult{
		TotalQuestions: len(questions),
		CategoryTotals: make(map[string]int),
		Details:        make([]model.QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		res.MaxScore += q.Points
		if _, ok := res.CategoryTotals[q.Category]; !ok {
			res.CategoryTotals[q.Category] = 0
		}

		submitted := ""
		if i < len(answers) {
			submitted = answers[i]
		}
		correct := submitted == q.CorrectAnswer
		if correct {
			res.TotalScore += q.Points
			res.CategoryTotals[q.Category] += q.Points
			res.CorrectCount++
		}

		res.Details = append(res.Details, model.QuestionResult{
			Index:      i + 1,
			QuestionID: q.ID,
			Submitted:  submitted,
			Correct:    q.CorrectAnswer,
			IsCorrect:  correct,
		})
	}

	res.Percentage = Percentage(res.TotalScore, res.MaxScore)
	return res
}

// Percentage 计算 round(100*score/max)，.5 向上取整；max 为 0 时返回 0
func Percentage(score, max int) int {
	if max <= 0 {
		return 0
	}
	return (200*score + max) / (2 * max)
}
