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

import (
	"fmt"
	"math"
	"sort"

	"github.com/ecodeclub/ekit/mapx"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
)

type AnswerRecord struct {
	Qid      int64
	Selected string
	Correct  bool
	// 目前不统计单题用时，始终为 0
	TimeTaken int64
}

type Summary struct {
	Total      int
	Answered   int
	Unanswered int
	Correct    int
	Incorrect  int
	// 百分制，保留两位小数
	Score float64
}

type GradedSet struct {
	Records []AnswerRecord
	Summary Summary
}

// Grade 批改答案。canonical 是本次考试题目的标准答案，
// 比较时严格按照字符串相等，不做大小写和空白处理。
// 只要有一道题不在 canonical 里面，整次批改就失败。
func Grade(canonical map[int64]string, submitted map[int64]string, total int) (GradedSet, error) {
	qids := mapx.Keys(submitted)
	sort.Slice(qids, func(i, j int) bool {
		return qids[i] < qids[j]
	})
	records := make([]AnswerRecord, 0, len(qids))
	for _, qid := range qids {
		answer, ok := canonical[qid]
		if !ok {
			return GradedSet{}, fmt.Errorf("%w: qid %d", errs.ErrQuestionNotFound, qid)
		}
		selected := submitted[qid]
		records = append(records, AnswerRecord{
			Qid:      qid,
			Selected: selected,
			Correct:  selected == answer,
		})
	}
	return GradedSet{
		Records: records,
		Summary: Summarize(records, total),
	}, nil
}

// Summarize 根据已经作答的记录统计，没有作答的题目不参与计分
func Summarize(records []AnswerRecord, total int) Summary {
	res := Summary{Total: total, Answered: len(records)}
	for _, r := range records {
		if r.Correct {
			res.Correct++
		}
	}
	res.Incorrect = res.Answered - res.Correct
	res.Unanswered = total - res.Answered
	if res.Unanswered < 0 {
		res.Unanswered = 0
	}
	res.Score = Percentage(res.Correct, res.Answered)
	return res
}

// Percentage correct / answered * 100，保留两位小数，answered 为 0 时返回 0
func Percentage(correct, answered int) float64 {
	if answered <= 0 {
		return 0
	}
	return Round2(float64(correct) / float64(answered) * 100)
}

func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}
