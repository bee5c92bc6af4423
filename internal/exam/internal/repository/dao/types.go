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

package dao

// Subject 科目，下线的科目里面的题目不会被抽到
type Subject struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255)"`
	IsActive bool   `gorm:"index"`
	Ctime    int64
	Utime    int64
}

// Question 题库，由管理后台导入
type Question struct {
	Id int64 `gorm:"primaryKey;autoIncrement"`
	// 题干
	Question  string `gorm:"type:text"`
	Option1   string `gorm:"type:text"`
	Option2   string `gorm:"type:text"`
	Option3   string `gorm:"type:text"`
	Option4   string `gorm:"type:text"`
	Answer    string `gorm:"type:varchar(8);comment:A-D"`
	SubjectId int64  `gorm:"index"`
	Degree    string `gorm:"type:varchar(16);index;comment:Bpharm Dpharm Both"`
	Ctime     int64
	Utime     int64
}

// QuestionWithSubject 抽题的时候和科目一起查出来
type QuestionWithSubject struct {
	Question
	SubjectName   string
	SubjectActive bool
}

// TestResult 一次考试的汇总
type TestResult struct {
	Id  int64 `gorm:"primaryKey;autoIncrement"`
	Uid int64 `gorm:"index:uid_ctime"`

	Degree              string `gorm:"type:varchar(16)"`
	TotalQuestions      int
	AnsweredQuestions   int
	UnansweredQuestions int
	Score               float64 `gorm:"type:decimal(5,2);comment:百分制"`
	CorrectAnswers      int
	IncorrectAnswers    int
	// 单位秒
	TimeTaken    int64
	AllottedTime int64
	Status       string `gorm:"type:varchar(16)"`

	Ctime int64 `gorm:"index:uid_ctime"`
	Utime int64
}

// TestQuestion 考试时出现过的题目，不管有没有作答
type TestQuestion struct {
	Id           int64 `gorm:"primaryKey;autoIncrement"`
	TestResultId int64 `gorm:"uniqueIndex:tid_qid"`
	QuestionId   int64 `gorm:"uniqueIndex:tid_qid"`
	Ctime        int64
}

// TestAnswer 每道已作答的题目一条
type TestAnswer struct {
	Id             int64  `gorm:"primaryKey;autoIncrement"`
	TestResultId   int64  `gorm:"uniqueIndex:tid_qid"`
	QuestionId     int64  `gorm:"uniqueIndex:tid_qid"`
	SelectedAnswer string `gorm:"type:varchar(8)"`
	IsCorrect      bool
	TimeTaken      int64
	Ctime          int64
}

type OverallStats struct {
	TotalTests      int64
	TotalScore      float64
	AvgScore        float64
	HighestScore    float64
	TotalTime       int64
	SubjectsCovered int64
}

type SubjectStats struct {
	Degree       string
	TestsTaken   int64
	AvgScore     float64
	HighestScore float64
}

type DegreeCount struct {
	Degree        string
	QuestionCount int64
}
