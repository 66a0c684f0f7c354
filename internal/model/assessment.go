package model

// AnswerKind 题目作答类型，目前只支持单选
type AnswerKind string

const (
	AnswerSingleChoice AnswerKind = "single_choice"
)

type AssessmentKind string

const (
	AssessmentDiagnostic AssessmentKind = "diagnostic"
	AssessmentCategory   AssessmentKind = "category"
)

// Question is one item of a question bank. CorrectAnswer never leaves the engine.
type Question struct {
	ID            string     `yaml:"id" json:"id"`
	Prompt        string     `yaml:"prompt" json:"prompt"`
	Kind          AnswerKind `yaml:"kind" json:"kind"`
	Options       []string   `yaml:"options" json:"options"`
	CorrectAnswer string     `yaml:"correctAnswer" json:"-"`
	Points        int        `yaml:"points" json:"points"`
	Category      string     `yaml:"category" json:"category"`
}

// Assessment 一次测评的有序题目集合
type Assessment struct {
	ID           string         `yaml:"id" json:"id"`
	Title        string         `yaml:"title" json:"title"`
	Kind         AssessmentKind `yaml:"kind" json:"kind"`
	TimeLimit    int            `yaml:"timeLimit" json:"timeLimit"` // Minutes
	PassingScore int            `yaml:"passingScore" json:"passingScore"`
	ShowDetails  bool           `yaml:"showDetails" json:"showDetails"`
	Questions    []Question     `yaml:"questions" json:"questions"`
}

// PublicQuestion 学生端题目视图，不含正确答案
type PublicQuestion struct {
	ID       string     `json:"id"`
	Prompt   string     `json:"prompt"`
	Kind     AnswerKind `json:"kind"`
	Options  []string   `json:"options"`
	Points   int        `json:"points"`
	Category string     `json:"category"`
}

type PublicAssessment struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Kind         AssessmentKind   `json:"kind"`
	TimeLimit    int              `json:"timeLimit"`
	PassingScore int              `json:"passingScore"`
	Questions    []PublicQuestion `json:"questions"`
}

type AssessmentSummary struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Kind          AssessmentKind `json:"kind"`
	QuestionCount int            `json:"questionCount"`
	MaxScore      int            `json:"maxScore"`
}

// Public 去掉正确答案后的测评
func (a Assessment) Public() PublicAssessment {
	qs := make([]PublicQuestion, len(a.Questions))
	for i, q := range a.Questions {
		qs[i] = PublicQuestion{
			ID:       q.ID,
			Prompt:   q.Prompt,
			Kind:     q.Kind,
			Options:  append([]string(nil), q.Options...),
			Points:   q.Points,
			Category: q.Category,
		}
	}
	return PublicAssessment{
		ID:           a.ID,
		Title:        a.Title,
		Kind:         a.Kind,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
		Questions:    qs,
	}
}

func (a Assessment) Summary() AssessmentSummary {
	max := 0
	for _, q := range a.Questions {
		max += q.Points
	}
	return AssessmentSummary{
		ID:            a.ID,
		Title:         a.Title,
		Kind:          a.Kind,
		QuestionCount: len(a.Questions),
		MaxScore:      max,
	}
}
