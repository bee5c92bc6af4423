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
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestAttemptRepository_Submit(t *testing.T) {
	allocator := domain.NewTimeAllocator(60)
	testCases := []struct {
		name    string
		sub     domain.Submission
		mock    func(t *testing.T) *sql.DB
		wantErr error
		want    domain.Attempt
	}{
		{
			name: "一对一错",
			sub: domain.Submission{
				Uid: 7,
				Meta: domain.TestMeta{
					Degree:    domain.DegreeBpharm,
					Total:     2,
					TimeTaken: 45,
					Questions: []int64{1, 2},
				},
				Answers: map[int64]string{1: "A", 2: "C"},
			},
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `test_results` .*").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec("INSERT INTO `test_questions` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectQuery("SELECT `id`,`answer` FROM `questions` WHERE id IN .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "answer"}).
						AddRow(1, "A").AddRow(2, "B"))
				mock.ExpectExec("INSERT INTO `test_answers` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectQuery("SELECT \\* FROM `test_answers` WHERE test_result_id = \\?").
					WithArgs(11).
					WillReturnRows(sqlmock.NewRows([]string{"id", "test_result_id", "question_id", "selected_answer", "is_correct", "time_taken", "ctime"}).
						AddRow(1, 11, 1, "A", true, 0, 0).
						AddRow(2, 11, 2, "C", false, 0, 0))
				mock.ExpectExec("UPDATE `test_results` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return db
			},
			want: domain.Attempt{
				Id:           11,
				Uid:          7,
				Degree:       domain.DegreeBpharm,
				Total:        2,
				Answered:     2,
				Unanswered:   0,
				Correct:      1,
				Incorrect:    1,
				Score:        50,
				TimeTaken:    45,
				AllottedTime: 120,
				Status:       domain.AttemptStatusCompleted,
			},
		},
		{
			name: "老版本客户端没有题目列表，部分作答",
			sub: domain.Submission{
				Uid: 7,
				Meta: domain.TestMeta{
					Degree:    domain.DegreeDpharm,
					Total:     5,
					TimeTaken: 900,
				},
				Answers: map[int64]string{3: "D", 4: "A", 5: "B"},
			},
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `test_results` .*").
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectQuery("SELECT `id`,`answer` FROM `questions` WHERE id IN .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "answer"}).
						AddRow(3, "D").AddRow(4, "A").AddRow(5, "C"))
				mock.ExpectExec("INSERT INTO `test_answers` .*").
					WillReturnResult(sqlmock.NewResult(1, 3))
				mock.ExpectQuery("SELECT \\* FROM `test_answers` WHERE test_result_id = \\?").
					WithArgs(12).
					WillReturnRows(sqlmock.NewRows([]string{"id", "test_result_id", "question_id", "selected_answer", "is_correct", "time_taken", "ctime"}).
						AddRow(1, 12, 3, "D", true, 0, 0).
						AddRow(2, 12, 4, "A", true, 0, 0).
						AddRow(3, 12, 5, "B", false, 0, 0))
				mock.ExpectExec("UPDATE `test_results` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return db
			},
			want: domain.Attempt{
				Id:           12,
				Uid:          7,
				Degree:       domain.DegreeDpharm,
				Total:        5,
				Answered:     3,
				Unanswered:   2,
				Correct:      2,
				Incorrect:    1,
				Score:        66.67,
				TimeTaken:    300,
				AllottedTime: 300,
				Status:       domain.AttemptStatusCompleted,
			},
		},
		{
			name: "题目不在本次考试里面，整体回滚",
			sub: domain.Submission{
				Uid: 7,
				Meta: domain.TestMeta{
					Degree:    domain.DegreeBpharm,
					Total:     2,
					TimeTaken: 45,
					Questions: []int64{1, 2},
				},
				Answers: map[int64]string{1: "A", 99: "C"},
			},
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `test_results` .*").
					WillReturnResult(sqlmock.NewResult(13, 1))
				mock.ExpectExec("INSERT INTO `test_questions` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectQuery("SELECT `id`,`answer` FROM `questions` WHERE id IN .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "answer"}).
						AddRow(1, "A").AddRow(99, "C"))
				mock.ExpectRollback()
				return db
			},
			wantErr: errs.ErrQuestionNotFound,
		},
		{
			name: "插入作答记录失败，整体回滚",
			sub: domain.Submission{
				Uid: 7,
				Meta: domain.TestMeta{
					Degree:    domain.DegreeBpharm,
					Total:     1,
					TimeTaken: 10,
					Questions: []int64{1},
				},
				Answers: map[int64]string{1: "A"},
			},
			mock: func(t *testing.T) *sql.DB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `test_results` .*").
					WillReturnResult(sqlmock.NewResult(14, 1))
				mock.ExpectExec("INSERT INTO `test_questions` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT `id`,`answer` FROM `questions` WHERE id IN .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "answer"}).AddRow(1, "A"))
				mock.ExpectExec("INSERT INTO `test_answers` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return db
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := tc.mock(t)
			db := openDB(t, mockDB)
			repo := NewAttemptRepository(dao.NewGORMAttemptDAO(db), dao.NewGORMQuestionDAO(db))
			allotment, err := allocator.Allocate(tc.sub.Meta.Total)
			require.NoError(t, err)
			att, err := repo.Submit(context.Background(), tc.sub, allotment)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.False(t, att.Ctime.IsZero())
			att.Ctime, att.Utime = time.Time{}, time.Time{}
			assert.Equal(t, tc.want, att)
		})
	}
}

func TestAttemptRepository_Review(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery("SELECT \\* FROM `test_results` WHERE id = \\? AND uid = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid"}))
	db := openDB(t, mockDB)
	repo := NewAttemptRepository(dao.NewGORMAttemptDAO(db), dao.NewGORMQuestionDAO(db))
	_, err = repo.Review(context.Background(), 11, 8)
	assert.ErrorIs(t, err, errs.ErrAttemptNotFound)
}

func TestAttemptRepository_StatsMissingSchema(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	missing := &mysql.MySQLError{Number: 1146, Message: "Table 'mcq.test_results' doesn't exist"}
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total_tests.*").WillReturnError(missing)
	mock.ExpectQuery("SELECT degree, COUNT\\(\\*\\) AS tests_taken.*").WillReturnError(missing)
	mock.ExpectQuery("SELECT `id`,`score`,`ctime` FROM `test_results`.*").WillReturnError(missing)
	db := openDB(t, mockDB)
	repo := NewAttemptRepository(dao.NewGORMAttemptDAO(db), dao.NewGORMQuestionDAO(db))
	stats, err := repo.Stats(context.Background(), 7, time.Now(), time.UTC)
	require.NoError(t, err)
	assert.True(t, stats.Empty())
	assert.Empty(t, stats.BySubject)
	assert.Empty(t, stats.RecentTrend)
}

func TestAttemptRepository_StatsError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total_tests.*").WillReturnError(errors.New("mock db error"))
	mock.ExpectQuery("SELECT degree, COUNT\\(\\*\\) AS tests_taken.*").
		WillReturnRows(sqlmock.NewRows([]string{"degree", "tests_taken", "avg_score", "highest_score"}))
	mock.ExpectQuery("SELECT `id`,`score`,`ctime` FROM `test_results`.*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "score", "ctime"}))
	db := openDB(t, mockDB)
	repo := NewAttemptRepository(dao.NewGORMAttemptDAO(db), dao.NewGORMQuestionDAO(db))
	_, err = repo.Stats(context.Background(), 7, time.Now(), time.UTC)
	assert.EqualError(t, err, "mock db error")
}

func openDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
