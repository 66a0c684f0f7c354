package database

import (
	"skillcal_backend/internal/model"

	"gorm.io/gorm"
)

// 课程目录为空时写入默认课程
var defaultCourses = []model.Course{
	{Title: "JavaScript Fundamentals", Difficulty: model.SkillBeginner, Category: "programming", EstimatedDuration: 180, IsPublished: true},
	{Title: "Python for Beginners", Difficulty: model.SkillBeginner, Category: "programming", EstimatedDuration: 200, IsPublished: true},
	{Title: "Java Programming Essentials", Difficulty: model.SkillIntermediate, Category: "programming", EstimatedDuration: 240, IsPublished: true},
	{Title: "C++ Advanced Programming", Difficulty: model.SkillAdvanced, Category: "programming", EstimatedDuration: 300, IsPublished: true},
	{Title: "React.js Complete Guide", Difficulty: model.SkillIntermediate, Category: "web-development", EstimatedDuration: 280, IsPublished: true},
	{Title: "Node.js Backend Development", Difficulty: model.SkillIntermediate, Category: "web-development", EstimatedDuration: 250, IsPublished: true},
	{Title: "HTML & CSS Mastery", Difficulty: model.SkillBeginner, Category: "web-development", EstimatedDuration: 150, IsPublished: true},
	{Title: "Vue.js Framework", Difficulty: model.SkillIntermediate, Category: "web-development", EstimatedDuration: 220, IsPublished: true},
	{Title: "React Native Mobile Apps", Difficulty: model.SkillIntermediate, Category: "mobile-development", EstimatedDuration: 320, IsPublished: true},
	{Title: "Flutter Development", Difficulty: model.SkillIntermediate, Category: "mobile-development", EstimatedDuration: 300, IsPublished: true},
	{Title: "iOS Development with Swift", Difficulty: model.SkillAdvanced, Category: "mobile-development", EstimatedDuration: 350, IsPublished: true},
	{Title: "Python for Data Science", Difficulty: model.SkillIntermediate, Category: "data-science", EstimatedDuration: 280, IsPublished: true},
	{Title: "SQL Database Mastery", Difficulty: model.SkillBeginner, Category: "data-science", EstimatedDuration: 200, IsPublished: true},
	{Title: "R Programming for Statistics", Difficulty: model.SkillIntermediate, Category: "data-science", EstimatedDuration: 250, IsPublished: true},
	{Title: "Machine Learning with Python", Difficulty: model.SkillAdvanced, Category: "ai-ml", EstimatedDuration: 400, IsPublished: true},
	{Title: "Deep Learning Fundamentals", Difficulty: model.SkillExpert, Category: "ai-ml", EstimatedDuration: 450, IsPublished: true},
}

func seedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	courses := make([]model.Course, len(defaultCourses))
	copy(courses, defaultCourses)
	return db.Create(&courses).Error
}
