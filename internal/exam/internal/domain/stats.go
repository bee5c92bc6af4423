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
	"sort"
	"time"
)

// TrendDays 最近趋势统计的天数
const TrendDays = 30

type Stats struct {
	Overall     OverallStats
	BySubject   []SubjectStats
	RecentTrend []TrendPoint
}

type OverallStats struct {
	TotalTests      int64
	TotalScore      float64
	AverageScore    float64
	HighestScore    float64
	TotalTime       int64
	SubjectsCovered int64
}

// SubjectStats 按照考试类型分组
type SubjectStats struct {
	Degree       Degree
	TestsTaken   int64
	AverageScore float64
	HighestScore float64
}

type TrendPoint struct {
	// 格式 2006-01-02
	Date         string
	TestsTaken   int64
	AverageScore float64
}

// ScorePoint 计算趋势用的原始数据
type ScorePoint struct {
	Score float64
	Ctime time.Time
}

func (s Stats) Empty() bool {
	return s.Overall.TotalTests == 0
}

// SortSubjects 平均分从高到低
func SortSubjects(subjects []SubjectStats) {
	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].AverageScore > subjects[j].AverageScore
	})
}

// BuildTrend 按天聚合，日期从早到晚
func BuildTrend(points []ScorePoint, loc *time.Location) []TrendPoint {
	if loc == nil {
		loc = time.Local
	}
	type bucket struct {
		cnt int64
		sum float64
	}
	buckets := make(map[string]*bucket, TrendDays)
	for _, p := range points {
		day := p.Ctime.In(loc).Format(time.DateOnly)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.cnt++
		b.sum += p.Score
	}
	res := make([]TrendPoint, 0, len(buckets))
	for day, b := range buckets {
		res = append(res, TrendPoint{
			Date:         day,
			TestsTaken:   b.cnt,
			AverageScore: Round2(b.sum / float64(b.cnt)),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Date < res[j].Date
	})
	return res
}

// TrendStart 趋势统计的起点
func TrendStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -TrendDays)
}
