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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/dao"
)

//go:generate mockgen -source=./question.go -destination=./mocks/question.mock.go -package=repomocks QuestionRepository
type QuestionRepository interface {
	Random(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error)
	CountByDegree(ctx context.Context, degree domain.Degree) (int64, error)
	CountBySubject(ctx context.Context, subjectId int64) (int64, error)
	Filters(ctx context.Context) (domain.Filters, error)
}

var _ QuestionRepository = &questionRepository{}

type questionRepository struct {
	dao dao.QuestionDAO
}

func NewQuestionRepository(d dao.QuestionDAO) QuestionRepository {
	return &questionRepository{dao: d}
}

func (q *questionRepository) Random(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	res, err := q.dao.Random(ctx, filter.SubjectId, filter.Degree.String(), filter.Count)
	return slice.Map(res, func(idx int, src dao.QuestionWithSubject) domain.Question {
		return questionToDomain(src)
	}), err
}

func (q *questionRepository) CountByDegree(ctx context.Context, degree domain.Degree) (int64, error) {
	return q.dao.CountByDegree(ctx, degree.String())
}

func (q *questionRepository) CountBySubject(ctx context.Context, subjectId int64) (int64, error) {
	return q.dao.CountBySubject(ctx, subjectId)
}

func (q *questionRepository) Filters(ctx context.Context) (domain.Filters, error) {
	subjects, err := q.dao.ActiveSubjects(ctx)
	if err != nil {
		return domain.Filters{}, err
	}
	degrees := slice.Map(domain.AllDegrees(), func(idx int, src domain.Degree) string {
		return src.String()
	})
	counts, err := q.dao.DegreeCounts(ctx, degrees)
	if err != nil {
		return domain.Filters{}, err
	}
	return domain.Filters{
		Subjects: slice.Map(subjects, func(idx int, src dao.Subject) domain.Subject {
			return domain.Subject{Id: src.Id, Name: src.Name, Active: src.IsActive}
		}),
		Exams: slice.Map(counts, func(idx int, src dao.DegreeCount) domain.DegreeCount {
			return domain.DegreeCount{Degree: domain.Degree(src.Degree), Count: src.QuestionCount}
		}),
	}, nil
}

func questionToDomain(q dao.QuestionWithSubject) domain.Question {
	return domain.Question{
		Id:      q.Id,
		Content: q.Question.Question,
		Options: [4]string{q.Option1, q.Option2, q.Option3, q.Option4},
		Answer:  q.Answer,
		Degree:  domain.Degree(q.Degree),
		Subject: domain.Subject{
			Id:     q.SubjectId,
			Name:   q.SubjectName,
			Active: q.SubjectActive,
		},
	}
}
