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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache"
)

// ExamSubmittedEventConsumer 交卷之后删掉统计数据的缓存，
// 历史记录和考试详情依旧依赖过期时间
type ExamSubmittedEventConsumer struct {
	consumer mq.Consumer
	cache    cache.ExamCache
	logger   *elog.Component
}

func NewExamSubmittedEventConsumer(q mq.MQ, c cache.ExamCache) (*ExamSubmittedEventConsumer, error) {
	const groupID = "exam_stats"
	consumer, err := q.Consumer(ExamSubmittedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ExamSubmittedEventConsumer{
		consumer: consumer,
		cache:    c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ExamSubmittedEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费交卷事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ExamSubmittedEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ExamSubmittedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.cache.DeleteStats(ctx, evt.Uid)
	if err != nil {
		return fmt.Errorf("删除统计缓存失败 uid %d: %w", evt.Uid, err)
	}
	return nil
}
