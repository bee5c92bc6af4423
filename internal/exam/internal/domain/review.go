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

// ReviewQuestion 考后回顾里面的一道题，没有作答的题目 Selected 为空
type ReviewQuestion struct {
	Question   Question
	Selected   string
	Correct    bool
	Unanswered bool
}

// Review 完整的考试详情，包含没有作答的题目
type Review struct {
	Attempt    Attempt
	Questions  []ReviewQuestion
	Correct    int
	Incorrect  int
	Unanswered int
}

// BuildReview 以考试时出现的题目为准还原题目列表。
// 老数据没有记录题目列表，这时候已作答的题目会被追加到后面。
func BuildReview(attempt Attempt, linked []int64, questions map[int64]Question, records []AnswerRecord) Review {
	answered := make(map[int64]AnswerRecord, len(records))
	for _, r := range records {
		answered[r.Qid] = r
	}
	res := Review{Attempt: attempt, Questions: make([]ReviewQuestion, 0, len(linked)+len(records))}
	seen := make(map[int64]struct{}, len(linked))
	for _, qid := range linked {
		if _, ok := seen[qid]; ok {
			continue
		}
		seen[qid] = struct{}{}
		res.append(questionOf(questions, qid), answered)
	}
	for _, r := range records {
		if _, ok := seen[r.Qid]; ok {
			continue
		}
		seen[r.Qid] = struct{}{}
		res.append(questionOf(questions, r.Qid), answered)
	}
	return res
}

// 题目被删除之后只剩下 ID
func questionOf(questions map[int64]Question, qid int64) Question {
	q, ok := questions[qid]
	if !ok {
		return Question{Id: qid}
	}
	return q
}

func (r *Review) append(q Question, answered map[int64]AnswerRecord) {
	rec, ok := answered[q.Id]
	rq := ReviewQuestion{Question: q, Unanswered: !ok}
	if ok {
		rq.Selected = rec.Selected
		rq.Correct = rec.Correct
	}
	switch {
	case rq.Unanswered:
		r.Unanswered++
	case rq.Correct:
		r.Correct++
	default:
		r.Incorrect++
	}
	r.Questions = append(r.Questions, rq)
}
