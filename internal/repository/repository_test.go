package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillcal_backend/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.LearnerProfileRecord{}, &model.AssessmentAttempt{}, &model.Course{}))
	return db
}

func bump(level model.SkillLevel, cat string, pts int, desc string) func(model.LearnerProfile) model.LearnerProfile {
	return func(p model.LearnerProfile) model.LearnerProfile {
		p.SkillLevel = level
		p.CategoryScores[cat] += pts
		p.ActivityLog = append([]model.ActivityEntry{{Description: desc, Kind: model.ActivityKindAssessment, Timestamp: time.Now().UTC()}}, p.ActivityLog...)
		return p
	}
}

func TestProfileRepository_FindMissingReturnsDefault(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))

	p, err := repo.Find(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", p.LearnerID)
	assert.Equal(t, model.SkillBeginner, p.SkillLevel)
	assert.Empty(t, p.CategoryScores)
	assert.Empty(t, p.ActivityLog)
}

func TestProfileRepository_ApplyAssessmentPersists(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	attempt := &model.AssessmentAttempt{
		AssessmentID:   "diagnostic-test",
		TotalScore:     20,
		MaxScore:       30,
		Percentage:     67,
		SkillLevel:     model.SkillAdvanced,
		CategoryTotals: datatypes.NewJSONType(map[string]int{"python": 20}),
		Answers:        datatypes.NewJSONType([]string{"A", "X", "C"}),
	}
	updated, err := repo.ApplyAssessment(ctx, "u1", bump(model.SkillAdvanced, "python", 20, "first"), attempt)
	require.NoError(t, err)
	assert.Equal(t, model.SkillAdvanced, updated.SkillLevel)
	assert.NotEmpty(t, attempt.ID)

	stored, err := repo.Find(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.SkillAdvanced, stored.SkillLevel)
	assert.Equal(t, map[string]int{"python": 20}, stored.CategoryScores)
	require.Len(t, stored.ActivityLog, 1)
	assert.Equal(t, "first", stored.ActivityLog[0].Description)

	_, err = repo.ApplyAssessment(ctx, "u1", bump(model.SkillAdvanced, "python", 5, "second"), nil)
	require.NoError(t, err)
	stored, err = repo.Find(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.CategoryScores["python"])
	assert.Len(t, stored.ActivityLog, 2)

	var rows int64
	require.NoError(t, db.Model(&model.LearnerProfileRecord{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	attempts, err := repo.ListAttempts(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, []string{"A", "X", "C"}, attempts[0].Answers.Data())
	assert.Equal(t, "u1", attempts[0].LearnerID)
}

func TestProfileRepository_ApplyAssessmentRollsBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	_, err := repo.ApplyAssessment(ctx, "u1", bump(model.SkillIntermediate, "math", 10, "ok"), nil)
	require.NoError(t, err)

	// 重复主键导致插入历史记录失败，档案更新必须一起回滚
	dup := &model.AssessmentAttempt{AssessmentID: "a"}
	dup.ID = "fixed-id"
	require.NoError(t, db.Create(&model.AssessmentAttempt{UUIDBase: model.UUIDBase{ID: "fixed-id"}, LearnerID: "x", AssessmentID: "a"}).Error)

	_, err = repo.ApplyAssessment(ctx, "u1", bump(model.SkillExpert, "math", 50, "fails"), dup)
	require.Error(t, err)

	stored, err := repo.Find(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.SkillIntermediate, stored.SkillLevel)
	assert.Equal(t, 10, stored.CategoryScores["math"])
	require.Len(t, stored.ActivityLog, 1)
	assert.Equal(t, "ok", stored.ActivityLog[0].Description)
}

func TestProfileRepository_ConcurrentUpdatesDoNotInterleave(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ApplyAssessment(ctx, "u1", bump(model.SkillBeginner, "python", 1, "x"), nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := repo.Find(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 20, stored.CategoryScores["python"])
}

func TestProfileRepository_CanceledContext(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ApplyAssessment(ctx, "u1", bump(model.SkillExpert, "python", 1, "x"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCourseRepository_FindPublishedByLevels(t *testing.T) {
	repo := NewCourseRepository(openTestDB(t))
	ctx := context.Background()

	courses := []model.Course{
		{Title: "c1", Difficulty: model.SkillIntermediate, IsPublished: true},
		{Title: "c2", Difficulty: model.SkillBeginner, IsPublished: true},
		{Title: "c3", Difficulty: model.SkillIntermediate, IsPublished: false},
		{Title: "c4", Difficulty: model.SkillExpert, IsPublished: true},
		{Title: "c5", Difficulty: model.SkillIntermediate, IsPublished: true, EstimatedDuration: 90},
	}
	for i := range courses {
		require.NoError(t, repo.Create(ctx, &courses[i]))
	}

	items, err := repo.FindPublishedByLevels(ctx, []model.SkillLevel{model.SkillIntermediate, model.SkillBeginner})
	require.NoError(t, err)

	var titles []string
	for _, it := range items {
		titles = append(titles, it.Title)
		assert.True(t, it.IsPublished)
	}
	assert.Equal(t, []string{"c1", "c2", "c5"}, titles)
	assert.Equal(t, 90, items[2].EstimatedDuration)
}

func TestRecommendationCache_DisabledIsNoop(t *testing.T) {
	var nilCache *RecommendationCache
	items, hit, err := nilCache.Get(context.Background(), []model.SkillLevel{model.SkillBeginner})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, items)
	assert.NoError(t, nilCache.Set(context.Background(), nil, nil))

	c := NewRecommendationCache(nil, time.Minute)
	_, hit, err = c.Get(context.Background(), nil)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "skillcal:catalog:advanced,beginner", cacheKey([]model.SkillLevel{model.SkillAdvanced, model.SkillBeginner}))
}
