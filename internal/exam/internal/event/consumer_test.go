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

package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	cachemocks "github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExamSubmittedEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(c *cachemocks.MockExamCache)
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "删除统计缓存",
			mock: func(c *cachemocks.MockExamCache) {
				c.EXPECT().DeleteStats(gomock.Any(), int64(7)).Return(nil)
			},
			assertErr: assert.NoError,
		},
		{
			name: "删除失败",
			mock: func(c *cachemocks.MockExamCache) {
				c.EXPECT().DeleteStats(gomock.Any(), int64(7)).Return(errors.New("mock redis error"))
			},
			assertErr: assert.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := cachemocks.NewMockExamCache(ctrl)
			tc.mock(c)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, ExamSubmittedTopic, 1))
			consumer, err := NewExamSubmittedEventConsumer(q, c)
			require.NoError(t, err)
			producer, err := NewExamSubmittedEventProducer(q)
			require.NoError(t, err)

			err = producer.Produce(ctx, ExamSubmittedEvent{
				Uid:       7,
				AttemptId: 11,
				Degree:    "Bpharm",
				Score:     50,
				Ctime:     time.Now().UnixMilli(),
			})
			require.NoError(t, err)
			tc.assertErr(t, consumer.Consume(ctx))
		})
	}
}
