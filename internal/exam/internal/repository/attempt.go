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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./attempt.go -destination=./mocks/attempt.mock.go -package=repomocks AttemptRepository
type AttemptRepository interface {
	// Submit 在一个事务里面完成落库和批改，任何一步失败都会整体回滚
	Submit(ctx context.Context, sub domain.Submission, allotment domain.Allotment) (domain.Attempt, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Attempt, error)
	Count(ctx context.Context, uid int64) (int64, error)
	// Review id 对应的考试不属于 uid 的时候也返回 ErrAttemptNotFound
	Review(ctx context.Context, id, uid int64) (domain.Review, error)
	Stats(ctx context.Context, uid int64, since time.Time, loc *time.Location) (domain.Stats, error)
}

var _ AttemptRepository = &attemptRepository{}

type attemptRepository struct {
	dao   dao.AttemptDAO
	qdao  dao.QuestionDAO
	l     *elog.Component
	nowFn func() time.Time
}

func NewAttemptRepository(d dao.AttemptDAO, qdao dao.QuestionDAO) AttemptRepository {
	return &attemptRepository{
		dao:   d,
		qdao:  qdao,
		l:     elog.DefaultLogger,
		nowFn: time.Now,
	}
}

func (a *attemptRepository) Submit(ctx context.Context, sub domain.Submission, allotment domain.Allotment) (domain.Attempt, error) {
	now := a.nowFn().UnixMilli()
	var res dao.TestResult
	err := a.dao.Transaction(ctx, func(tx dao.AttemptTxDAO) error {
		// 1. 先插入汇总记录，分数在最后回填
		res = dao.TestResult{
			Uid:                 sub.Uid,
			Degree:              sub.Meta.Degree.String(),
			TotalQuestions:      sub.Meta.Total,
			AnsweredQuestions:   len(sub.Answers),
			UnansweredQuestions: max(sub.Meta.Total-len(sub.Answers), 0),
			TimeTaken:           allotment.ClampTimeTaken(sub.Meta.TimeTaken),
			AllottedTime:        allotment.TotalSeconds,
			Status:              string(domain.AttemptStatusCompleted),
			Ctime:               now,
			Utime:               now,
		}
		id, err := tx.CreateResult(ctx, res)
		if err != nil {
			return fmt.Errorf("保存考试记录失败 %w", err)
		}
		res.Id = id

		// 2. 记录本次考试出现过的题目，老版本客户端没有这个数据
		linked := make(map[int64]struct{}, len(sub.Meta.Questions))
		links := make([]dao.TestQuestion, 0, len(sub.Meta.Questions))
		for _, qid := range sub.Meta.Questions {
			linked[qid] = struct{}{}
			links = append(links, dao.TestQuestion{TestResultId: id, QuestionId: qid, Ctime: now})
		}
		if err = tx.CreateLinks(ctx, links); err != nil {
			return fmt.Errorf("保存考试题目失败 %w", err)
		}

		// 3. 批改
		canonical, err := tx.CanonicalAnswers(ctx, sub.AnsweredQids())
		if err != nil {
			return fmt.Errorf("查询标准答案失败 %w", err)
		}
		if len(linked) > 0 {
			for qid := range canonical {
				if _, ok := linked[qid]; !ok {
					delete(canonical, qid)
				}
			}
		}
		graded, err := domain.Grade(canonical, sub.Answers, sub.Meta.Total)
		if err != nil {
			return err
		}
		answers := slice.Map(graded.Records, func(idx int, src domain.AnswerRecord) dao.TestAnswer {
			return dao.TestAnswer{
				TestResultId:   id,
				QuestionId:     src.Qid,
				SelectedAnswer: src.Selected,
				IsCorrect:      src.Correct,
				TimeTaken:      src.TimeTaken,
				Ctime:          now,
			}
		})
		if err = tx.CreateAnswers(ctx, answers); err != nil {
			return fmt.Errorf("保存作答记录失败 %w", err)
		}

		// 4. 以刚刚写入的作答记录为准重新统计
		stored, err := tx.Answers(ctx, id)
		if err != nil {
			return fmt.Errorf("查询作答记录失败 %w", err)
		}
		summary := domain.Summarize(slice.Map(stored, func(idx int, src dao.TestAnswer) domain.AnswerRecord {
			return answerToDomain(src)
		}), sub.Meta.Total)
		res.AnsweredQuestions = summary.Answered
		res.UnansweredQuestions = summary.Unanswered
		res.CorrectAnswers = summary.Correct
		res.IncorrectAnswers = summary.Incorrect
		res.Score = summary.Score
		res.Utime = a.nowFn().UnixMilli()
		if err = tx.UpdateScore(ctx, res); err != nil {
			return fmt.Errorf("更新考试分数失败 %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Attempt{}, err
	}
	return attemptToDomain(res), nil
}

func (a *attemptRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Attempt, error) {
	res, err := a.dao.List(ctx, uid, offset, limit)
	return slice.Map(res, func(idx int, src dao.TestResult) domain.Attempt {
		return attemptToDomain(src)
	}), err
}

func (a *attemptRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return a.dao.Count(ctx, uid)
}

func (a *attemptRepository) Review(ctx context.Context, id, uid int64) (domain.Review, error) {
	res, err := a.dao.GetByIdAndUid(ctx, id, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Review{}, errs.ErrAttemptNotFound
	}
	if err != nil {
		return domain.Review{}, err
	}
	var (
		eg      errgroup.Group
		linked  []int64
		answers []dao.TestAnswer
	)
	eg.Go(func() error {
		var err error
		linked, err = a.dao.LinkedQids(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		answers, err = a.dao.Answers(ctx, id)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Review{}, err
	}

	records := slice.Map(answers, func(idx int, src dao.TestAnswer) domain.AnswerRecord {
		return answerToDomain(src)
	})
	qids := make([]int64, 0, len(linked)+len(records))
	qids = append(qids, linked...)
	for _, r := range records {
		qids = append(qids, r.Qid)
	}
	qs, err := a.qdao.GetByIds(ctx, qids)
	if err != nil {
		return domain.Review{}, err
	}
	questions := make(map[int64]domain.Question, len(qs))
	for _, q := range qs {
		questions[q.Id] = questionToDomain(q)
	}
	return domain.BuildReview(attemptToDomain(res), linked, questions, records), nil
}

func (a *attemptRepository) Stats(ctx context.Context, uid int64, since time.Time, loc *time.Location) (domain.Stats, error) {
	var (
		eg       errgroup.Group
		overall  dao.OverallStats
		subjects []dao.SubjectStats
		scores   []dao.TestResult
	)
	eg.Go(func() error {
		var err error
		overall, err = a.dao.Overall(ctx, uid)
		return a.tolerateMissingSchema(err, uid, "overall")
	})
	eg.Go(func() error {
		var err error
		subjects, err = a.dao.BySubject(ctx, uid)
		return a.tolerateMissingSchema(err, uid, "subject")
	})
	eg.Go(func() error {
		var err error
		scores, err = a.dao.ScoresSince(ctx, uid, since.UnixMilli())
		return a.tolerateMissingSchema(err, uid, "trend")
	})
	if err := eg.Wait(); err != nil {
		return domain.Stats{}, err
	}

	bySubject := slice.Map(subjects, func(idx int, src dao.SubjectStats) domain.SubjectStats {
		return domain.SubjectStats{
			Degree:       domain.Degree(src.Degree),
			TestsTaken:   src.TestsTaken,
			AverageScore: domain.Round2(src.AvgScore),
			HighestScore: domain.Round2(src.HighestScore),
		}
	})
	domain.SortSubjects(bySubject)
	return domain.Stats{
		Overall: domain.OverallStats{
			TotalTests:      overall.TotalTests,
			TotalScore:      domain.Round2(overall.TotalScore),
			AverageScore:    domain.Round2(overall.AvgScore),
			HighestScore:    domain.Round2(overall.HighestScore),
			TotalTime:       overall.TotalTime,
			SubjectsCovered: overall.SubjectsCovered,
		},
		BySubject: bySubject,
		RecentTrend: domain.BuildTrend(slice.Map(scores, func(idx int, src dao.TestResult) domain.ScorePoint {
			return domain.ScorePoint{Score: src.Score, Ctime: time.UnixMilli(src.Ctime)}
		}), loc),
	}, nil
}

// 表结构还没有迁移完的时候统计结果按照零值处理
func (a *attemptRepository) tolerateMissingSchema(err error, uid int64, part string) error {
	if err != nil && dao.IsMissingSchema(err) {
		a.l.Warn("统计数据表结构缺失，按照空结果处理",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("part", part))
		return nil
	}
	return err
}

func attemptToDomain(r dao.TestResult) domain.Attempt {
	return domain.Attempt{
		Id:           r.Id,
		Uid:          r.Uid,
		Degree:       domain.Degree(r.Degree),
		Total:        r.TotalQuestions,
		Answered:     r.AnsweredQuestions,
		Unanswered:   r.UnansweredQuestions,
		Correct:      r.CorrectAnswers,
		Incorrect:    r.IncorrectAnswers,
		Score:        r.Score,
		TimeTaken:    r.TimeTaken,
		AllottedTime: r.AllottedTime,
		Status:       domain.AttemptStatus(r.Status),
		Ctime:        time.UnixMilli(r.Ctime),
		Utime:        time.UnixMilli(r.Utime),
	}
}

func answerToDomain(a dao.TestAnswer) domain.AnswerRecord {
	return domain.AnswerRecord{
		Qid:       a.QuestionId,
		Selected:  a.SelectedAnswer,
		Correct:   a.IsCorrect,
		TimeTaken: a.TimeTaken,
	}
}
