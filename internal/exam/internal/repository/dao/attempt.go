// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type AttemptDAO interface {
	// Transaction fn 里面的操作共用一个连接，fn 返回 error 就整体回滚，
	// 无论成功与否连接都会被归还
	Transaction(ctx context.Context, fn func(tx AttemptTxDAO) error) error

	Count(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]TestResult, error)
	GetByIdAndUid(ctx context.Context, id, uid int64) (TestResult, error)
	LinkedQids(ctx context.Context, tid int64) ([]int64, error)
	Answers(ctx context.Context, tid int64) ([]TestAnswer, error)

	Overall(ctx context.Context, uid int64) (OverallStats, error)
	BySubject(ctx context.Context, uid int64) ([]SubjectStats, error)
	ScoresSince(ctx context.Context, uid int64, since int64) ([]TestResult, error)
}

// AttemptTxDAO 交卷事务内部的操作
type AttemptTxDAO interface {
	CreateResult(ctx context.Context, r TestResult) (int64, error)
	CreateLinks(ctx context.Context, links []TestQuestion) error
	// CanonicalAnswers 返回 qid => 标准答案，不存在的题目不会出现在结果里面
	CanonicalAnswers(ctx context.Context, qids []int64) (map[int64]string, error)
	CreateAnswers(ctx context.Context, answers []TestAnswer) error
	Answers(ctx context.Context, tid int64) ([]TestAnswer, error)
	UpdateScore(ctx context.Context, r TestResult) error
}

var _ AttemptDAO = &GORMAttemptDAO{}

type GORMAttemptDAO struct {
	db *egorm.Component
}

func NewGORMAttemptDAO(db *egorm.Component) AttemptDAO {
	return &GORMAttemptDAO{db: db}
}

func (g *GORMAttemptDAO) Transaction(ctx context.Context, fn func(tx AttemptTxDAO) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormAttemptTxDAO{tx: tx})
	})
}

func (g *GORMAttemptDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&TestResult{}).Where("uid = ?", uid).Count(&cnt).Error
	return cnt, err
}

func (g *GORMAttemptDAO) List(ctx context.Context, uid int64, offset, limit int) ([]TestResult, error) {
	var res []TestResult
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) GetByIdAndUid(ctx context.Context, id, uid int64) (TestResult, error) {
	var res TestResult
	err := g.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) LinkedQids(ctx context.Context, tid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&TestQuestion{}).
		Where("test_result_id = ?", tid).
		Order("id ASC").
		Pluck("question_id", &res).Error
	return res, err
}

func (g *GORMAttemptDAO) Answers(ctx context.Context, tid int64) ([]TestAnswer, error) {
	return answersOf(g.db.WithContext(ctx), tid)
}

func (g *GORMAttemptDAO) Overall(ctx context.Context, uid int64) (OverallStats, error) {
	var res OverallStats
	err := g.db.WithContext(ctx).Model(&TestResult{}).
		Select("COUNT(*) AS total_tests, "+
			"COALESCE(SUM(score), 0) AS total_score, "+
			"COALESCE(AVG(score), 0) AS avg_score, "+
			"COALESCE(MAX(score), 0) AS highest_score, "+
			"COALESCE(SUM(time_taken), 0) AS total_time, "+
			"COUNT(DISTINCT degree) AS subjects_covered").
		Where("uid = ?", uid).
		Scan(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) BySubject(ctx context.Context, uid int64) ([]SubjectStats, error) {
	var res []SubjectStats
	err := g.db.WithContext(ctx).Model(&TestResult{}).
		Select("degree, COUNT(*) AS tests_taken, AVG(score) AS avg_score, MAX(score) AS highest_score").
		Where("uid = ?", uid).
		Group("degree").
		Order("avg_score DESC").
		Scan(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) ScoresSince(ctx context.Context, uid int64, since int64) ([]TestResult, error) {
	var res []TestResult
	err := g.db.WithContext(ctx).
		Select("id", "score", "ctime").
		Where("uid = ? AND ctime >= ?", uid, since).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

type gormAttemptTxDAO struct {
	tx *gorm.DB
}

func (g *gormAttemptTxDAO) CreateResult(ctx context.Context, r TestResult) (int64, error) {
	err := g.tx.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (g *gormAttemptTxDAO) CreateLinks(ctx context.Context, links []TestQuestion) error {
	if len(links) == 0 {
		return nil
	}
	return g.tx.WithContext(ctx).Create(&links).Error
}

func (g *gormAttemptTxDAO) CanonicalAnswers(ctx context.Context, qids []int64) (map[int64]string, error) {
	res := make(map[int64]string, len(qids))
	if len(qids) == 0 {
		return res, nil
	}
	var qs []Question
	err := g.tx.WithContext(ctx).
		Select("id", "answer").
		Where("id IN ?", qids).
		Find(&qs).Error
	if err != nil {
		return nil, err
	}
	for _, q := range qs {
		res[q.Id] = q.Answer
	}
	return res, nil
}

func (g *gormAttemptTxDAO) CreateAnswers(ctx context.Context, answers []TestAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return g.tx.WithContext(ctx).Create(&answers).Error
}

func (g *gormAttemptTxDAO) Answers(ctx context.Context, tid int64) ([]TestAnswer, error) {
	return answersOf(g.tx.WithContext(ctx), tid)
}

func (g *gormAttemptTxDAO) UpdateScore(ctx context.Context, r TestResult) error {
	return g.tx.WithContext(ctx).Model(&TestResult{}).
		Where("id = ?", r.Id).
		Updates(map[string]any{
			"score":                r.Score,
			"correct_answers":      r.CorrectAnswers,
			"incorrect_answers":    r.IncorrectAnswers,
			"answered_questions":   r.AnsweredQuestions,
			"unanswered_questions": r.UnansweredQuestions,
			"utime":                r.Utime,
		}).Error
}

func answersOf(db *gorm.DB, tid int64) ([]TestAnswer, error) {
	var res []TestAnswer
	err := db.Where("test_result_id = ?", tid).Order("id ASC").Find(&res).Error
	return res, err
}
