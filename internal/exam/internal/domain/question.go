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

import "strings"

// Degree 考试类型，题目和考试记录都会带上
type Degree string

const (
	DegreeBpharm Degree = "Bpharm"
	DegreeDpharm Degree = "Dpharm"
	DegreeBoth   Degree = "Both"
)

func (d Degree) String() string {
	return string(d)
}

func (d Degree) Valid() bool {
	switch d {
	case DegreeBpharm, DegreeDpharm, DegreeBoth:
		return true
	default:
		return false
	}
}

// AllDegrees 题库里面允许出现的全部考试类型
func AllDegrees() []Degree {
	return []Degree{DegreeBpharm, DegreeDpharm, DegreeBoth}
}

// Question 题目创建之后就不会再修改，对考试来说是只读的
type Question struct {
	Id      int64
	Content string
	// 固定四个选项，依次对应 A B C D
	Options [4]string
	// 标准答案，A-D 中的一个
	Answer  string
	Degree  Degree
	Subject Subject
}

type Subject struct {
	Id   int64
	Name string
	// 题目是否可用取决于所属科目
	Active bool
}

// QuestionFilter 抽题条件，零值表示不过滤
type QuestionFilter struct {
	SubjectId int64
	Degree    Degree
	Count     int
}

type DegreeCount struct {
	Degree Degree
	Count  int64
}

type Filters struct {
	Subjects []Subject
	Exams    []DegreeCount
}

// NormalizeAnswer 去掉空白并转成小写。
// 批改走的是严格相等比较，并没有使用这个方法。
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
