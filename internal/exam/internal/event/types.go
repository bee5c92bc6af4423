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

const ExamSubmittedTopic = "exam_submitted_events"

// ExamSubmittedEvent 交卷成功之后发送
type ExamSubmittedEvent struct {
	Uid       int64   `json:"uid"`
	AttemptId int64   `json:"attemptId"`
	Degree    string  `json:"degree"`
	Score     float64 `json:"score"`
	Ctime     int64   `json:"ctime"`
}
