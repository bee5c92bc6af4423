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

import "fmt"

// DefaultSecondsPerQuestion 每道题默认一分钟
const DefaultSecondsPerQuestion = 60

// TimeAllocator 根据题目数量计算考试时长。
// 抽题时给前端计时和交卷时复算允许时长必须用同一个 TimeAllocator。
type TimeAllocator struct {
	SecondsPerQuestion int
}

func NewTimeAllocator(secondsPerQuestion int) TimeAllocator {
	if secondsPerQuestion <= 0 {
		secondsPerQuestion = DefaultSecondsPerQuestion
	}
	return TimeAllocator{SecondsPerQuestion: secondsPerQuestion}
}

type Allotment struct {
	TotalSeconds int64
	Breakdown    AllotmentBreakdown
}

type AllotmentBreakdown struct {
	Questions          int
	SecondsPerQuestion int
	Minutes            int64
	Seconds            int64
}

// Allocate 0 道题就是 0 秒，不设置下限
func (a TimeAllocator) Allocate(questionCount int) (Allotment, error) {
	if questionCount < 0 {
		return Allotment{}, fmt.Errorf("题目数量不能为负数 %d", questionCount)
	}
	total := int64(questionCount) * int64(a.SecondsPerQuestion)
	return Allotment{
		TotalSeconds: total,
		Breakdown: AllotmentBreakdown{
			Questions:          questionCount,
			SecondsPerQuestion: a.SecondsPerQuestion,
			Minutes:            total / 60,
			Seconds:            total % 60,
		},
	}, nil
}

// ClampTimeTaken 用时不会超过允许时长，也不会是负数
func (a Allotment) ClampTimeTaken(timeTaken int64) int64 {
	if timeTaken < 0 {
		return 0
	}
	if timeTaken > a.TotalSeconds {
		return a.TotalSeconds
	}
	return timeTaken
}
