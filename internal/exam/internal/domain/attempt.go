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

package domain

import "time"

type AttemptStatus string

// AttemptStatusCompleted 目前只有交卷之后才会落库，所以只有这一种状态
const AttemptStatusCompleted AttemptStatus = "completed"

// Attempt 一次完整的考试记录
type Attempt struct {
	Id     int64
	Uid    int64
	Degree Degree

	Total      int
	Answered   int
	Unanswered int
	Correct    int
	Incorrect  int
	Score      float64

	// 单位秒
	TimeTaken    int64
	AllottedTime int64
	Status       AttemptStatus

	Ctime time.Time
	Utime time.Time
}

func (a Attempt) Summary() Summary {
	return Summary{
		Total:      a.Total,
		Answered:   a.Answered,
		Unanswered: a.Unanswered,
		Correct:    a.Correct,
		Incorrect:  a.Incorrect,
		Score:      a.Score,
	}
}

// ApplySummary 用重新统计出来的结果覆盖记录上的计数和分数
func (a *Attempt) ApplySummary(s Summary) {
	a.Answered = s.Answered
	a.Unanswered = s.Unanswered
	a.Correct = s.Correct
	a.Incorrect = s.Incorrect
	a.Score = s.Score
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// HistoryPage 分页的考试记录，Total 和当前页无关
type HistoryPage struct {
	Attempts []Attempt
	Page     int
	Limit    int
	Total    int64
}

func (h HistoryPage) Pages() int64 {
	if h.Limit <= 0 {
		return 0
	}
	return (h.Total + int64(h.Limit) - 1) / int64(h.Limit)
}

// NormalizePage page 从 1 开始，非法的参数使用默认值
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
