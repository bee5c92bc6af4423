package domain

import (
	"testing"

	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade(t *testing.T) {
	canonical := map[int64]string{1: "A", 2: "B", 3: "C"}
	testCases := []struct {
		name      string
		submitted map[int64]string
		total     int
		want      GradedSet
		wantErr   error
	}{
		{
			name:      "一对一错",
			submitted: map[int64]string{2: "C", 1: "A"},
			total:     2,
			want: GradedSet{
				Records: []AnswerRecord{
					{Qid: 1, Selected: "A", Correct: true},
					{Qid: 2, Selected: "C"},
				},
				Summary: Summary{Total: 2, Answered: 2, Correct: 1, Incorrect: 1, Score: 50},
			},
		},
		{
			name:      "部分作答",
			submitted: map[int64]string{1: "A", 2: "B", 3: "D"},
			total:     5,
			want: GradedSet{
				Records: []AnswerRecord{
					{Qid: 1, Selected: "A", Correct: true},
					{Qid: 2, Selected: "B", Correct: true},
					{Qid: 3, Selected: "D"},
				},
				Summary: Summary{Total: 5, Answered: 3, Unanswered: 2, Correct: 2, Incorrect: 1, Score: 66.67},
			},
		},
		{
			name:      "严格比较大小写",
			submitted: map[int64]string{1: "a"},
			total:     1,
			want: GradedSet{
				Records: []AnswerRecord{{Qid: 1, Selected: "a"}},
				Summary: Summary{Total: 1, Answered: 1, Incorrect: 1},
			},
		},
		{
			name:      "一道都没答",
			submitted: map[int64]string{},
			total:     3,
			want: GradedSet{
				Records: []AnswerRecord{},
				Summary: Summary{Total: 3, Unanswered: 3},
			},
		},
		{
			name:      "题目不存在",
			submitted: map[int64]string{1: "A", 99: "B"},
			total:     2,
			wantErr:   errs.ErrQuestionNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Grade(canonical, tc.submitted, tc.total)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
			s := res.Summary
			assert.Equal(t, s.Answered, s.Correct+s.Incorrect)
			assert.Equal(t, s.Total, s.Answered+s.Unanswered)
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, float64(0), Percentage(0, 0))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, float64(100), Percentage(4, 4))
}

func TestSummarize_AnsweredExceedsTotal(t *testing.T) {
	res := Summarize([]AnswerRecord{{Qid: 1, Correct: true}, {Qid: 2}}, 1)
	require.Equal(t, 0, res.Unanswered)
	assert.Equal(t, float64(50), res.Score)
}
