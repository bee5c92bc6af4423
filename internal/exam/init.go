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

package exam

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sridharaakam360/MCQ1/config"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/event"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/dao"
	"gorm.io/gorm"
)

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	InitTableOnce(db)
	return dao.NewGORMQuestionDAO(db)
}

func InitAttemptDAO(db *egorm.Component) dao.AttemptDAO {
	InitTableOnce(db)
	return dao.NewGORMAttemptDAO(db)
}

// InitConfig 没有配置的字段使用默认值
func InitConfig() config.ExamConfig {
	cfg := config.DefaultExamConfig()
	if econf.Get("exam") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("exam", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initExamSubmittedConsumer(q mq.MQ, c cache.ExamCache) (*event.ExamSubmittedEventConsumer, error) {
	return event.NewExamSubmittedEventConsumer(q, c)
}
