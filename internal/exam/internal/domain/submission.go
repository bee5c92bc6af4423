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
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
)

// Submission 校验过后的交卷请求
type Submission struct {
	Uid     int64
	Meta    TestMeta
	Answers map[int64]string
}

type TestMeta struct {
	Degree Degree
	Total  int
	// 单位秒，由前端计时器给出
	TimeTaken int64
	// 本次考试出现过的全部题目。老版本客户端不会传
	Questions []int64
}

// RawSubmission 前端传过来的原始数据，题目 ID 是 JSON 对象的 key，所以是字符串
type RawSubmission struct {
	Answers map[string]string `label:"answers" validate:"required,dive,oneof=A B C D"`
	Meta    RawTestMeta       `label:"testData"`
}

type RawTestMeta struct {
	Degree    string  `label:"degree" validate:"required,oneof=Bpharm Dpharm Both"`
	Total     *int    `label:"totalQuestions" validate:"required,gte=0"`
	TimeTaken *int64  `label:"timeTaken" validate:"required,gte=0"`
	Questions []int64 `label:"questions" validate:"omitempty,unique,dive,gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("label")
	})
	return v
}

// Parse 校验并转换成 Submission。所有的问题会被一次性收集起来返回，而不是遇到第一个就结束
func (r RawSubmission) Parse(uid int64) (Submission, error) {
	var violations []string
	if err := validate.Struct(r); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return Submission{}, err
		}
		for _, fe := range verrs {
			violations = append(violations, describe(fe))
		}
	}

	keys := make([]string, 0, len(r.Answers))
	for key := range r.Answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	answers := make(map[int64]string, len(r.Answers))
	for _, key := range keys {
		qid, err := strconv.ParseInt(key, 10, 64)
		if err != nil || qid <= 0 {
			violations = append(violations, fmt.Sprintf("answers: invalid question id %q", key))
			continue
		}
		answers[qid] = r.Answers[key]
	}

	if r.Meta.Total != nil {
		total := *r.Meta.Total
		if len(r.Answers) > total {
			violations = append(violations,
				fmt.Sprintf("answers: %d answers exceed totalQuestions %d", len(r.Answers), total))
		}
		if len(r.Meta.Questions) > 0 && len(r.Meta.Questions) != total {
			violations = append(violations,
				fmt.Sprintf("questions: %d questions does not match totalQuestions %d", len(r.Meta.Questions), total))
		}
	}

	if len(violations) > 0 {
		return Submission{}, errs.NewValidationError(violations...)
	}
	return Submission{
		Uid: uid,
		Meta: TestMeta{
			Degree:    Degree(r.Meta.Degree),
			Total:     *r.Meta.Total,
			TimeTaken: *r.Meta.TimeTaken,
			Questions: r.Meta.Questions,
		},
		Answers: answers,
	}, nil
}

// AnsweredQids 已作答题目的 ID
func (s Submission) AnsweredQids() []int64 {
	res := make([]int64, 0, len(s.Answers))
	for qid := range s.Answers {
		res = append(res, qid)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func describe(fe validator.FieldError) string {
	// 去掉最前面的结构体名字
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", field)
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
