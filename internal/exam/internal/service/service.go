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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sridharaakam360/MCQ1/config"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/event"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache"
	"golang.org/x/sync/errgroup"
)

var submissionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "exam_submissions_total",
	Help: "Total number of exam submissions",
}, []string{"result"})

//go:generate mockgen -source=./service.go -destination=../../mocks/exam.mock.go -package=exammocks Service
type Service interface {
	// CalculateTime 抽题和交卷复算用的是同一个 allocator
	CalculateTime(ctx context.Context, questionCount int) (domain.Allotment, error)
	Questions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, domain.Allotment, error)
	Filters(ctx context.Context) (domain.Filters, error)
	Submit(ctx context.Context, uid int64, raw domain.RawSubmission) (domain.Attempt, error)
	History(ctx context.Context, uid int64, page, limit int) (domain.HistoryPage, error)
	Stats(ctx context.Context, uid int64) (domain.Stats, error)
	Detail(ctx context.Context, id, uid int64) (domain.Review, error)
	ClearCache(ctx context.Context) error
}

var _ Service = &service{}

type service struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	cache        cache.ExamCache
	producer     event.ExamSubmittedEventProducer
	allocator    domain.TimeAllocator
	cfg          config.ExamConfig
	loc          *time.Location
	logger       *elog.Component
	nowFn        func() time.Time
}

func NewService(questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	c cache.ExamCache,
	producer event.ExamSubmittedEventProducer,
	cfg config.ExamConfig) Service {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		elog.DefaultLogger.Warn("时区配置错误，使用本地时区",
			elog.String("timezone", cfg.Timezone),
			elog.FieldErr(err))
		loc = time.Local
	}
	return &service{
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		cache:        c,
		producer:     producer,
		allocator:    domain.NewTimeAllocator(cfg.SecondsPerQuestion),
		cfg:          cfg,
		loc:          loc,
		logger:       elog.DefaultLogger,
		nowFn:        time.Now,
	}
}

func (s *service) CalculateTime(_ context.Context, questionCount int) (domain.Allotment, error) {
	res, err := s.allocator.Allocate(questionCount)
	if err != nil {
		return domain.Allotment{}, errs.NewValidationError(err.Error())
	}
	return res, nil
}

func (s *service) Questions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, domain.Allotment, error) {
	if filter.Count <= 0 {
		return nil, domain.Allotment{}, errs.NewValidationError("count must be greater than 0")
	}
	if filter.Degree != "" && !filter.Degree.Valid() {
		return nil, domain.Allotment{}, errs.NewValidationError(
			fmt.Sprintf("degree must be one of [%s %s %s]", domain.DegreeBpharm, domain.DegreeDpharm, domain.DegreeBoth))
	}
	if filter.Degree != "" {
		cnt, err := s.questionRepo.CountByDegree(ctx, filter.Degree)
		if err != nil {
			return nil, domain.Allotment{}, err
		}
		if cnt == 0 {
			return nil, domain.Allotment{}, &errs.NotFoundError{
				Msg:   fmt.Sprintf("No questions found for %s exam", filter.Degree),
				Cause: errs.ErrNoQuestions,
			}
		}
	}
	if filter.SubjectId > 0 {
		cnt, err := s.questionRepo.CountBySubject(ctx, filter.SubjectId)
		if err != nil {
			return nil, domain.Allotment{}, err
		}
		if cnt == 0 {
			return nil, domain.Allotment{}, &errs.NotFoundError{
				Msg:   "No questions found for the selected subject",
				Cause: errs.ErrNoQuestions,
			}
		}
	}
	qs, err := s.questionRepo.Random(ctx, filter)
	if err != nil {
		return nil, domain.Allotment{}, err
	}
	if len(qs) == 0 {
		return nil, domain.Allotment{}, errs.ErrNoQuestions
	}
	allotment, err := s.allocator.Allocate(len(qs))
	return qs, allotment, err
}

func (s *service) Filters(ctx context.Context) (domain.Filters, error) {
	return withCache(ctx, s, cache.FiltersKey(), s.cfg.Cache.FiltersTTL,
		func(ctx context.Context) (domain.Filters, error) {
			return s.questionRepo.Filters(ctx)
		},
		func(f domain.Filters) bool {
			return len(f.Subjects) == 0 && len(f.Exams) == 0
		})
}

func (s *service) Submit(ctx context.Context, uid int64, raw domain.RawSubmission) (domain.Attempt, error) {
	sub, err := raw.Parse(uid)
	if err != nil {
		submissionCounter.WithLabelValues("invalid").Inc()
		return domain.Attempt{}, err
	}
	// 和抽题时计算时长用同一个 allocator
	allotment, err := s.allocator.Allocate(sub.Meta.Total)
	if err != nil {
		submissionCounter.WithLabelValues("invalid").Inc()
		return domain.Attempt{}, errs.NewValidationError(err.Error())
	}
	if s.cfg.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SubmitTimeout)
		defer cancel()
	}
	att, err := s.attemptRepo.Submit(ctx, sub, allotment)
	if err != nil {
		submissionCounter.WithLabelValues("failed").Inc()
		return domain.Attempt{}, err
	}
	submissionCounter.WithLabelValues("success").Inc()

	evt := event.ExamSubmittedEvent{
		Uid:       att.Uid,
		AttemptId: att.Id,
		Degree:    att.Degree.String(),
		Score:     att.Score,
		Ctime:     att.Ctime.UnixMilli(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送交卷事件失败",
			elog.FieldErr(er),
			elog.Int64("uid", uid),
			elog.Int64("attemptId", att.Id))
	}
	return att, nil
}

func (s *service) History(ctx context.Context, uid int64, page, limit int) (domain.HistoryPage, error) {
	page, limit = domain.NormalizePage(page, limit)
	return withCache(ctx, s, cache.HistoryKey(uid, page, limit), s.cfg.Cache.HistoryTTL,
		func(ctx context.Context) (domain.HistoryPage, error) {
			res := domain.HistoryPage{Page: page, Limit: limit}
			var eg errgroup.Group
			eg.Go(func() error {
				var err error
				res.Attempts, err = s.attemptRepo.List(ctx, uid, (page-1)*limit, limit)
				return err
			})
			eg.Go(func() error {
				var err error
				res.Total, err = s.attemptRepo.Count(ctx, uid)
				return err
			})
			return res, eg.Wait()
		},
		func(h domain.HistoryPage) bool {
			return len(h.Attempts) == 0
		})
}

func (s *service) Stats(ctx context.Context, uid int64) (domain.Stats, error) {
	return withCache(ctx, s, cache.StatsKey(uid), s.cfg.Cache.StatsTTL,
		func(ctx context.Context) (domain.Stats, error) {
			return s.attemptRepo.Stats(ctx, uid, domain.TrendStart(s.nowFn()), s.loc)
		},
		domain.Stats.Empty)
}

func (s *service) Detail(ctx context.Context, id, uid int64) (domain.Review, error) {
	return withCache(ctx, s, cache.DetailKey(id, uid), s.cfg.Cache.DetailTTL,
		func(ctx context.Context) (domain.Review, error) {
			return s.attemptRepo.Review(ctx, id, uid)
		},
		func(r domain.Review) bool {
			return r.Attempt.Id == 0
		})
}

func (s *service) ClearCache(ctx context.Context) error {
	return s.cache.ClearAll(ctx)
}

// withCache 先查缓存，没有命中再计算。缓存出错不影响结果，空结果不缓存
func withCache[T any](ctx context.Context, s *service, key cache.Key, ttl time.Duration,
	compute func(ctx context.Context) (T, error),
	empty func(T) bool) (T, error) {
	var res T
	err := s.cache.Get(ctx, key, &res)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		s.logger.Warn("查询缓存失败", elog.FieldErr(err), elog.String("key", string(key)))
	}
	res, err = compute(ctx)
	if err != nil || empty(res) {
		return res, err
	}
	if er := s.cache.Set(ctx, key, res, ttl); er != nil {
		s.logger.Warn("写入缓存失败", elog.FieldErr(er), elog.String("key", string(key)))
	}
	return res, nil
}
