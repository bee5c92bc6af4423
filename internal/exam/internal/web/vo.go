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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
)

type CalculateTimeReq struct {
	Questions *int `json:"questions"`
}

type QuestionsReq struct {
	Count     int    `form:"count"`
	SubjectId int64  `form:"subject_id"`
	Degree    string `form:"degree"`
}

type HistoryReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type SubmitReq struct {
	Answers  map[string]string `json:"answers"`
	TestData TestData          `json:"testData"`
}

// TestData answeredQuestions 和 unansweredQuestions 以服务端统计为准，这里只是兼容前端
type TestData struct {
	Degree              string  `json:"degree"`
	TotalQuestions      *int    `json:"totalQuestions"`
	AnsweredQuestions   *int    `json:"answeredQuestions,omitempty"`
	UnansweredQuestions *int    `json:"unansweredQuestions,omitempty"`
	TimeTaken           *int64  `json:"timeTaken"`
	Questions           []int64 `json:"questions,omitempty"`
}

func (r SubmitReq) toDomain() domain.RawSubmission {
	return domain.RawSubmission{
		Answers: r.Answers,
		Meta: domain.RawTestMeta{
			Degree:    r.TestData.Degree,
			Total:     r.TestData.TotalQuestions,
			TimeTaken: r.TestData.TimeTaken,
			Questions: r.TestData.Questions,
		},
	}
}

type Allotment struct {
	TotalTimeInSeconds int64     `json:"totalTimeInSeconds"`
	Breakdown          Breakdown `json:"breakdown"`
}

type Breakdown struct {
	Questions          int   `json:"questions"`
	SecondsPerQuestion int   `json:"secondsPerQuestion"`
	Minutes            int64 `json:"minutes"`
	Seconds            int64 `json:"seconds"`
}

func newAllotment(a domain.Allotment) Allotment {
	return Allotment{
		TotalTimeInSeconds: a.TotalSeconds,
		Breakdown: Breakdown{
			Questions:          a.Breakdown.Questions,
			SecondsPerQuestion: a.Breakdown.SecondsPerQuestion,
			Minutes:            a.Breakdown.Minutes,
			Seconds:            a.Breakdown.Seconds,
		},
	}
}

type Subject struct {
	Id   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Question 不会返回标准答案
type Question struct {
	Id       int64     `json:"id"`
	Question string    `json:"question"`
	Options  [4]string `json:"options"`
	Degree   string    `json:"degree"`
	Subject  Subject   `json:"subject"`
}

type QuestionList struct {
	Questions []Question `json:"questions"`
	Allotment
}

func newQuestionList(qs []domain.Question, a domain.Allotment) QuestionList {
	return QuestionList{
		Questions: slice.Map(qs, func(idx int, src domain.Question) Question {
			return Question{
				Id:       src.Id,
				Question: src.Content,
				Options:  src.Options,
				Degree:   src.Degree.String(),
				Subject:  Subject{Id: src.Subject.Id, Name: src.Subject.Name},
			}
		}),
		Allotment: newAllotment(a),
	}
}

type Exam struct {
	Degree        string `json:"degree"`
	QuestionCount int64  `json:"questionCount"`
}

type Filters struct {
	Subjects []Subject `json:"subjects"`
	Exams    []Exam    `json:"exams"`
}

func newFilters(f domain.Filters) Filters {
	return Filters{
		Subjects: slice.Map(f.Subjects, func(idx int, src domain.Subject) Subject {
			return Subject{Id: src.Id, Name: src.Name}
		}),
		Exams: slice.Map(f.Exams, func(idx int, src domain.DegreeCount) Exam {
			return Exam{Degree: src.Degree.String(), QuestionCount: src.Count}
		}),
	}
}

type SubmitResult struct {
	ResultId            int64   `json:"resultId"`
	Score               float64 `json:"score"`
	TotalQuestions      int     `json:"totalQuestions"`
	AnsweredQuestions   int     `json:"answeredQuestions"`
	UnansweredQuestions int     `json:"unansweredQuestions"`
	TimeTaken           int64   `json:"timeTaken"`
	AllottedTime        int64   `json:"allottedTime"`
	CorrectAnswers      int     `json:"correctAnswers"`
	IncorrectAnswers    int     `json:"incorrectAnswers"`
}

func newSubmitResult(a domain.Attempt) SubmitResult {
	return SubmitResult{
		ResultId:            a.Id,
		Score:               a.Score,
		TotalQuestions:      a.Total,
		AnsweredQuestions:   a.Answered,
		UnansweredQuestions: a.Unanswered,
		TimeTaken:           a.TimeTaken,
		AllottedTime:        a.AllottedTime,
		CorrectAnswers:      a.Correct,
		IncorrectAnswers:    a.Incorrect,
	}
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type TestSummary struct {
	Id             int64     `json:"id"`
	TotalQuestions int       `json:"totalQuestions"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TimeTaken      int64     `json:"timeTaken"`
	CompletedAt    time.Time `json:"completedAt"`
	Subject        Subject   `json:"subject"`
}

type History struct {
	Pagination Pagination    `json:"pagination"`
	Tests      []TestSummary `json:"tests"`
}

func newHistory(h domain.HistoryPage) History {
	return History{
		Pagination: Pagination{
			Page:  h.Page,
			Limit: h.Limit,
			Total: h.Total,
			Pages: h.Pages(),
		},
		Tests: slice.Map(h.Attempts, func(idx int, src domain.Attempt) TestSummary {
			return TestSummary{
				Id:             src.Id,
				TotalQuestions: src.Total,
				Score:          src.Score,
				CorrectAnswers: src.Correct,
				TimeTaken:      src.TimeTaken,
				CompletedAt:    src.Ctime,
				Subject:        Subject{Name: src.Degree.String()},
			}
		}),
	}
}

type OverallStats struct {
	TotalTests      int64   `json:"totalTests"`
	TotalScore      float64 `json:"totalScore"`
	AverageScore    float64 `json:"averageScore"`
	HighestScore    float64 `json:"highestScore"`
	TotalTime       int64   `json:"totalTime"`
	SubjectsCovered int64   `json:"subjectsCovered"`
}

type SubjectStats struct {
	Subject      Subject `json:"subject"`
	TestsTaken   int64   `json:"testsTaken"`
	AverageScore float64 `json:"averageScore"`
	HighestScore float64 `json:"highestScore"`
}

type TrendPoint struct {
	Date         string  `json:"date"`
	TestsTaken   int64   `json:"testsTaken"`
	AverageScore float64 `json:"averageScore"`
}

type Stats struct {
	Overall     OverallStats   `json:"overall"`
	BySubject   []SubjectStats `json:"bySubject"`
	RecentTrend []TrendPoint   `json:"recentTrend"`
}

func newStats(s domain.Stats) Stats {
	return Stats{
		Overall: OverallStats{
			TotalTests:      s.Overall.TotalTests,
			TotalScore:      s.Overall.TotalScore,
			AverageScore:    s.Overall.AverageScore,
			HighestScore:    s.Overall.HighestScore,
			TotalTime:       s.Overall.TotalTime,
			SubjectsCovered: s.Overall.SubjectsCovered,
		},
		BySubject: slice.Map(s.BySubject, func(idx int, src domain.SubjectStats) SubjectStats {
			return SubjectStats{
				Subject:      Subject{Name: src.Degree.String()},
				TestsTaken:   src.TestsTaken,
				AverageScore: src.AverageScore,
				HighestScore: src.HighestScore,
			}
		}),
		RecentTrend: slice.Map(s.RecentTrend, func(idx int, src domain.TrendPoint) TrendPoint {
			return TrendPoint{
				Date:         src.Date,
				TestsTaken:   src.TestsTaken,
				AverageScore: src.AverageScore,
			}
		}),
	}
}

type ReviewQuestion struct {
	QuestionId     int64     `json:"questionId"`
	Question       string    `json:"question"`
	Options        [4]string `json:"options"`
	CorrectOption  string    `json:"correctOption"`
	SelectedOption *string   `json:"selectedOption"`
	IsCorrect      bool      `json:"isCorrect"`
	IsUnanswered   bool      `json:"isUnanswered"`
}

type TestDetail struct {
	TestId              int64            `json:"testId"`
	Subject             Subject          `json:"subject"`
	TotalQuestions      int              `json:"totalQuestions"`
	CorrectAnswers      int              `json:"correctAnswers"`
	IncorrectAnswers    int              `json:"incorrectAnswers"`
	UnansweredQuestions int              `json:"unansweredQuestions"`
	Score               float64          `json:"score"`
	TimeTaken           int64            `json:"timeTaken"`
	AllottedTime        int64            `json:"allottedTime"`
	Questions           []ReviewQuestion `json:"questions"`
	SubmittedAt         time.Time        `json:"submittedAt"`
}

func newTestDetail(r domain.Review) TestDetail {
	return TestDetail{
		TestId:              r.Attempt.Id,
		Subject:             Subject{Name: r.Attempt.Degree.String()},
		TotalQuestions:      r.Attempt.Total,
		CorrectAnswers:      r.Correct,
		IncorrectAnswers:    r.Incorrect,
		UnansweredQuestions: max(r.Attempt.Total-r.Correct-r.Incorrect, r.Unanswered),
		Score:               r.Attempt.Score,
		TimeTaken:           r.Attempt.TimeTaken,
		AllottedTime:        r.Attempt.AllottedTime,
		SubmittedAt:         r.Attempt.Ctime,
		Questions: slice.Map(r.Questions, func(idx int, src domain.ReviewQuestion) ReviewQuestion {
			res := ReviewQuestion{
				QuestionId:    src.Question.Id,
				Question:      src.Question.Content,
				Options:       src.Question.Options,
				CorrectOption: src.Question.Answer,
				IsCorrect:     src.Correct,
				IsUnanswered:  src.Unanswered,
			}
			if !src.Unanswered {
				selected := src.Selected
				res.SelectedOption = &selected
			}
			return res
		}),
	}
}
