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
)

type QuestionDAO interface {
	// Random 从可用科目里面随机抽题，subjectId 为 0 或者 degree 为空表示不过滤
	Random(ctx context.Context, subjectId int64, degree string, limit int) ([]QuestionWithSubject, error)
	CountByDegree(ctx context.Context, degree string) (int64, error)
	CountBySubject(ctx context.Context, subjectId int64) (int64, error)
	GetByIds(ctx context.Context, ids []int64) ([]QuestionWithSubject, error)
	ActiveSubjects(ctx context.Context) ([]Subject, error)
	DegreeCounts(ctx context.Context, degrees []string) ([]DegreeCount, error)
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Random(ctx context.Context, subjectId int64, degree string, limit int) ([]QuestionWithSubject, error) {
	query := g.db.WithContext(ctx).Table("questions").
		Select("questions.*, subjects.name AS subject_name, subjects.is_active AS subject_active").
		Joins("JOIN subjects ON questions.subject_id = subjects.id").
		Where("subjects.is_active = ?", true)
	if subjectId > 0 {
		query = query.Where("questions.subject_id = ?", subjectId)
	}
	if degree != "" {
		query = query.Where("questions.degree = ?", degree)
	}
	var res []QuestionWithSubject
	err := query.Order("RAND()").Limit(limit).Scan(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) CountByDegree(ctx context.Context, degree string) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Question{}).Where("degree = ?", degree).Count(&cnt).Error
	return cnt, err
}

func (g *GORMQuestionDAO) CountBySubject(ctx context.Context, subjectId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Question{}).Where("subject_id = ?", subjectId).Count(&cnt).Error
	return cnt, err
}

func (g *GORMQuestionDAO) GetByIds(ctx context.Context, ids []int64) ([]QuestionWithSubject, error) {
	var res []QuestionWithSubject
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Table("questions").
		Select("questions.*, subjects.name AS subject_name, subjects.is_active AS subject_active").
		Joins("LEFT JOIN subjects ON questions.subject_id = subjects.id").
		Where("questions.id IN ?", ids).
		Scan(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) ActiveSubjects(ctx context.Context) ([]Subject, error) {
	var res []Subject
	err := g.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) DegreeCounts(ctx context.Context, degrees []string) ([]DegreeCount, error) {
	var res []DegreeCount
	err := g.db.WithContext(ctx).Model(&Question{}).
		Select("degree, COUNT(*) AS question_count").
		Where("degree IN ?", degrees).
		Group("degree").
		Order("degree ASC").
		Scan(&res).Error
	return res, err
}
