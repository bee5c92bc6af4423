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
	"testing"
	"time"

	"github.com/sridharaakam360/MCQ1/config"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/event"
	evtmocks "github.com/sridharaakam360/MCQ1/internal/exam/internal/event/mocks"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache"
	cachemocks "github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache/mocks"
	repomocks "github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	questionRepo *repomocks.MockQuestionRepository
	attemptRepo  *repomocks.MockAttemptRepository
	cache        *cachemocks.MockExamCache
	producer     *evtmocks.MockExamSubmittedEventProducer
}

func newTestService(ctrl *gomock.Controller) (*service, mocks) {
	m := mocks{
		questionRepo: repomocks.NewMockQuestionRepository(ctrl),
		attemptRepo:  repomocks.NewMockAttemptRepository(ctrl),
		cache:        cachemocks.NewMockExamCache(ctrl),
		producer:     evtmocks.NewMockExamSubmittedEventProducer(ctrl),
	}
	cfg := config.DefaultExamConfig()
	cfg.Timezone = "UTC"
	svc := NewService(m.questionRepo, m.attemptRepo, m.cache, m.producer, cfg).(*service)
	return svc, m
}

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestService_CalculateTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestService(ctrl)

	res, err := svc.CalculateTime(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(600), res.TotalSeconds)
	again, err := svc.CalculateTime(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, res, again)

	_, err = svc.CalculateTime(context.Background(), -1)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		raw      domain.RawSubmission
		mock     func(m mocks)
		wantErr  error
		wantKind errs.Kind
		want     domain.Attempt
	}{
		{
			name: "交卷成功",
			raw: domain.RawSubmission{
				Answers: map[string]string{"1": "A", "2": "C"},
				Meta: domain.RawTestMeta{
					Degree:    "Bpharm",
					Total:     intPtr(2),
					TimeTaken: int64Ptr(45),
					Questions: []int64{1, 2},
				},
			},
			mock: func(m mocks) {
				m.attemptRepo.EXPECT().Submit(gomock.Any(), domain.Submission{
					Uid: 7,
					Meta: domain.TestMeta{
						Degree:    domain.DegreeBpharm,
						Total:     2,
						TimeTaken: 45,
						Questions: []int64{1, 2},
					},
					Answers: map[int64]string{1: "A", 2: "C"},
				}, gomock.Any()).DoAndReturn(func(ctx context.Context, sub domain.Submission, allotment domain.Allotment) (domain.Attempt, error) {
					_, ok := ctx.Deadline()
					assert.True(t, ok)
					assert.Equal(t, int64(120), allotment.TotalSeconds)
					return domain.Attempt{Id: 11, Uid: 7, Degree: domain.DegreeBpharm, Total: 2, Answered: 2, Correct: 1, Incorrect: 1, Score: 50}, nil
				})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ExamSubmittedEvent) error {
						assert.Equal(t, int64(7), evt.Uid)
						assert.Equal(t, int64(11), evt.AttemptId)
						return nil
					})
			},
			want: domain.Attempt{Id: 11, Uid: 7, Degree: domain.DegreeBpharm, Total: 2, Answered: 2, Correct: 1, Incorrect: 1, Score: 50},
		},
		{
			name: "发送消息失败不影响交卷",
			raw: domain.RawSubmission{
				Answers: map[string]string{},
				Meta: domain.RawTestMeta{
					Degree:    "Dpharm",
					Total:     intPtr(3),
					TimeTaken: int64Ptr(10),
				},
			},
			mock: func(m mocks) {
				m.attemptRepo.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Attempt{Id: 12, Uid: 7, Total: 3, Unanswered: 3}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			want: domain.Attempt{Id: 12, Uid: 7, Total: 3, Unanswered: 3},
		},
		{
			name: "校验失败不会落库",
			raw: domain.RawSubmission{
				Answers: map[string]string{"1": "A"},
				Meta:    domain.RawTestMeta{Degree: "Mpharm"},
			},
			mock:     func(m mocks) {},
			wantKind: errs.KindValidation,
		},
		{
			name: "事务失败",
			raw: domain.RawSubmission{
				Answers: map[string]string{"1": "A"},
				Meta: domain.RawTestMeta{
					Degree:    "Both",
					Total:     intPtr(1),
					TimeTaken: int64Ptr(10),
				},
			},
			mock: func(m mocks) {
				m.attemptRepo.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Attempt{}, errors.New("mock db error"))
			},
			wantErr:  errors.New("mock db error"),
			wantKind: errs.KindInternal,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			res, err := svc.Submit(context.Background(), 7, tc.raw)
			if tc.wantErr != nil || tc.wantKind != errs.KindInternal {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				if tc.wantErr != nil {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_Questions(t *testing.T) {
	testCases := []struct {
		name    string
		filter  domain.QuestionFilter
		mock    func(m mocks)
		wantMsg string
		wantLen int
		wantSec int64
	}{
		{
			name:   "考试类型下面没有题目",
			filter: domain.QuestionFilter{Degree: domain.DegreeDpharm, Count: 10},
			mock: func(m mocks) {
				m.questionRepo.EXPECT().CountByDegree(gomock.Any(), domain.DegreeDpharm).Return(int64(0), nil)
			},
			wantMsg: "No questions found for Dpharm exam",
		},
		{
			name:   "科目下面没有题目",
			filter: domain.QuestionFilter{SubjectId: 3, Count: 10},
			mock: func(m mocks) {
				m.questionRepo.EXPECT().CountBySubject(gomock.Any(), int64(3)).Return(int64(0), nil)
			},
			wantMsg: "No questions found for the selected subject",
		},
		{
			name:   "过滤之后没有题目",
			filter: domain.QuestionFilter{Degree: domain.DegreeBpharm, SubjectId: 3, Count: 10},
			mock: func(m mocks) {
				m.questionRepo.EXPECT().CountByDegree(gomock.Any(), domain.DegreeBpharm).Return(int64(5), nil)
				m.questionRepo.EXPECT().CountBySubject(gomock.Any(), int64(3)).Return(int64(5), nil)
				m.questionRepo.EXPECT().Random(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantMsg: errs.ErrNoQuestions.Error(),
		},
		{
			name:   "抽题成功，时长按照实际题目数量计算",
			filter: domain.QuestionFilter{Count: 10},
			mock: func(m mocks) {
				m.questionRepo.EXPECT().Random(gomock.Any(), domain.QuestionFilter{Count: 10}).
					Return([]domain.Question{{Id: 1}, {Id: 2}, {Id: 3}}, nil)
			},
			wantLen: 3,
			wantSec: 180,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			qs, allotment, err := svc.Questions(context.Background(), tc.filter)
			if tc.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
				assert.Equal(t, tc.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, qs, tc.wantLen)
			assert.Equal(t, tc.wantSec, allotment.TotalSeconds)
		})
	}
}

func TestService_History(t *testing.T) {
	t.Run("缓存命中", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), cache.HistoryKey(7, 1, 10), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key cache.Key, val any) error {
				*(val.(*domain.HistoryPage)) = domain.HistoryPage{
					Attempts: []domain.Attempt{{Id: 1}},
					Page:     1,
					Limit:    10,
					Total:    1,
				}
				return nil
			})
		res, err := svc.History(context.Background(), 7, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)
	})

	t.Run("没有命中，查询之后写入缓存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), cache.HistoryKey(7, 2, 5), gomock.Any()).Return(cache.ErrKeyNotFound)
		m.attemptRepo.EXPECT().List(gomock.Any(), int64(7), 5, 5).
			Return([]domain.Attempt{{Id: 6}, {Id: 7}}, nil)
		m.attemptRepo.EXPECT().Count(gomock.Any(), int64(7)).Return(int64(12), nil)
		m.cache.EXPECT().Set(gomock.Any(), cache.HistoryKey(7, 2, 5), gomock.Any(), 5*time.Minute).Return(nil)
		res, err := svc.History(context.Background(), 7, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(12), res.Total)
		assert.Equal(t, int64(3), res.Pages())
		assert.Len(t, res.Attempts, 2)
	})

	t.Run("空结果不缓存，缓存出错不影响查询", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("mock redis error"))
		m.attemptRepo.EXPECT().List(gomock.Any(), int64(7), 0, 10).Return(nil, nil)
		m.attemptRepo.EXPECT().Count(gomock.Any(), int64(7)).Return(int64(0), nil)
		res, err := svc.History(context.Background(), 7, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Pages())
	})
}

func TestService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	m.cache.EXPECT().Get(gomock.Any(), cache.DetailKey(11, 8), gomock.Any()).Return(cache.ErrKeyNotFound)
	m.attemptRepo.EXPECT().Review(gomock.Any(), int64(11), int64(8)).Return(domain.Review{}, errs.ErrAttemptNotFound)
	_, err := svc.Detail(context.Background(), 11, 8)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	svc.nowFn = func() time.Time {
		return now
	}
	stats := domain.Stats{Overall: domain.OverallStats{TotalTests: 2, AverageScore: 75}}
	m.cache.EXPECT().Get(gomock.Any(), cache.StatsKey(7), gomock.Any()).Return(cache.ErrKeyNotFound)
	m.attemptRepo.EXPECT().Stats(gomock.Any(), int64(7), now.AddDate(0, 0, -30), time.UTC).Return(stats, nil)
	m.cache.EXPECT().Set(gomock.Any(), cache.StatsKey(7), stats, time.Hour).Return(nil)
	res, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, stats, res)
}

func TestService_Filters(t *testing.T) {
	testCases := []struct {
		name string
		mock func(m mocks)
		want domain.Filters
	}{
		{
			name: "查询之后写入缓存",
			mock: func(m mocks) {
				m.cache.EXPECT().Get(gomock.Any(), cache.FiltersKey(), gomock.Any()).Return(cache.ErrKeyNotFound)
				m.questionRepo.EXPECT().Filters(gomock.Any()).Return(domain.Filters{
					Subjects: []domain.Subject{{Id: 1, Name: "Pharmaceutics", Active: true}},
					Exams:    []domain.DegreeCount{{Degree: domain.DegreeBpharm, Count: 10}},
				}, nil)
				m.cache.EXPECT().Set(gomock.Any(), cache.FiltersKey(), gomock.Any(), time.Hour).Return(nil)
			},
			want: domain.Filters{
				Subjects: []domain.Subject{{Id: 1, Name: "Pharmaceutics", Active: true}},
				Exams:    []domain.DegreeCount{{Degree: domain.DegreeBpharm, Count: 10}},
			},
		},
		{
			name: "空结果不缓存",
			mock: func(m mocks) {
				m.cache.EXPECT().Get(gomock.Any(), cache.FiltersKey(), gomock.Any()).Return(errors.New("mock redis error"))
				m.questionRepo.EXPECT().Filters(gomock.Any()).Return(domain.Filters{}, nil)
			},
			want: domain.Filters{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			res, err := svc.Filters(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}
