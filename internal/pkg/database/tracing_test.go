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

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type TestResult struct {
	Id    int64
	Uid   int64
	Score float64
}

func TestGormTracingPlugin(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `test_results` WHERE uid = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "score"}).AddRow(1, 7, 50))
	mock.ExpectExec("INSERT INTO `test_results` .*").
		WillReturnError(errors.New("mock db error"))

	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	err = db.Use(NewGormTracingPlugin(WithTracerProvider(tp)))
	require.NoError(t, err)

	var res []TestResult
	err = db.WithContext(context.Background()).Where("uid = ?", 7).Find(&res).Error
	require.NoError(t, err)
	err = db.WithContext(context.Background()).Create(&TestResult{Uid: 7}).Error
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "test_results SELECT", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, "test_results INSERT", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "mock db error", spans[1].Status().Description)
}
