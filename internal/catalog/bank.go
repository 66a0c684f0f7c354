// Package catalog loads the assessment question banks. A Bank is built once
// at startup and is read-only afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"skillcal_backend/internal/model"
)

//go:embed banks.yaml
var defaultBanks []byte

var ErrInvalidBank = errors.New("invalid question bank")

type bankFile struct {
	Assessments []model.Assessment `yaml:"assessments"`
}

// Bank 只读题库，按ID索引测评
type Bank struct {
	order []string
	byID  map[string]model.Assessment
}

// Default 返回内置题库
func Default() (*Bank, error) {
	return Load(defaultBanks)
}

func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Load(data)
}

// Load 解析并校验 YAML 题库
func Load(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}
	return New(f.Assessments)
}

// New 校验测评并构建题库，题库持有数据副本
func New(assessments []model.Assessment) (*Bank, error) {
	b := &Bank{byID: make(map[string]model.Assessment, len(assessments))}
	for _, a := range assessments {
		if a.Kind == "" {
			a.Kind = model.AssessmentDiagnostic
		}
		for i := range a.Questions {
			if a.Questions[i].Kind == "" {
				a.Questions[i].Kind = model.AnswerSingleChoice
			}
		}
		if err := validate(a); err != nil {
			return nil, err
		}
		if _, dup := b.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate assessment %q", ErrInvalidBank, a.ID)
		}
		b.byID[a.ID] = cloneAssessment(a)
		b.order = append(b.order, a.ID)
	}
	return b, nil
}

func validate(a model.Assessment) error {
	if a.ID == "" {
		return fmt.Errorf("%w: assessment without id", ErrInvalidBank)
	}
	switch a.Kind {
	case model.AssessmentDiagnostic, model.AssessmentCategory:
	default:
		return fmt.Errorf("%w: assessment %q has unknown kind %q", ErrInvalidBank, a.ID, a.Kind)
	}

	seen := make(map[string]bool, len(a.Questions))
	for i, q := range a.Questions {
		where := fmt.Sprintf("assessment %q question #%d", a.ID, i+1)
		if q.ID == "" {
			return fmt.Errorf("%w: %s has no id", ErrInvalidBank, where)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: %s duplicates id %q", ErrInvalidBank, where, q.ID)
		}
		seen[q.ID] = true
		if q.Kind != model.AnswerSingleChoice {
			return fmt.Errorf("%w: %s has unsupported kind %q", ErrInvalidBank, where, q.Kind)
		}
		if q.Points <= 0 {
			return fmt.Errorf("%w: %s must be worth a positive number of points", ErrInvalidBank, where)
		}
		if q.Category == "" {
			return fmt.Errorf("%w: %s has no category", ErrInvalidBank, where)
		}
		if q.CorrectAnswer == "" {
			return fmt.Errorf("%w: %s has no correct answer", ErrInvalidBank, where)
		}
		if len(q.Options) > 0 && !slices.Contains(q.Options, q.CorrectAnswer) {
			return fmt.Errorf("%w: %s correct answer %q is not one of its options", ErrInvalidBank, where, q.CorrectAnswer)
		}
	}
	return nil
}

// Get 返回测评副本，调用方无法修改题库
func (b *Bank) Get(id string) (model.Assessment, bool) {
	a, ok := b.byID[id]
	if !ok {
		return model.Assessment{}, false
	}
	return cloneAssessment(a), true
}

// List 按文件顺序返回全部测评
func (b *Bank) List() []model.Assessment {
	out := make([]model.Assessment, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, cloneAssessment(b.byID[id]))
	}
	return out
}

func (b *Bank) Len() int {
	return len(b.order)
}

func cloneAssessment(a model.Assessment) model.Assessment {
	qs := make([]model.Question, len(a.Questions))
	for i, q := range a.Questions {
		q.Options = slices.Clone(q.Options)
		qs[i] = q
	}
	a.Questions = qs
	return a
}
