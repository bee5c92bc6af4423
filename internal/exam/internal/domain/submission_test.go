package domain

import (
	"errors"
	"testing"

	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawSubmission_Parse(t *testing.T) {
	total, timeTaken := 2, int64(45)
	sub, err := RawSubmission{
		Answers: map[string]string{"2": "C", "1": "A"},
		Meta: RawTestMeta{
			Degree:    "Bpharm",
			Total:     &total,
			TimeTaken: &timeTaken,
			Questions: []int64{1, 2},
		},
	}.Parse(7)
	require.NoError(t, err)
	assert.Equal(t, Submission{
		Uid: 7,
		Meta: TestMeta{
			Degree:    DegreeBpharm,
			Total:     2,
			TimeTaken: 45,
			Questions: []int64{1, 2},
		},
		Answers: map[int64]string{1: "A", 2: "C"},
	}, sub)
	assert.Equal(t, []int64{1, 2}, sub.AnsweredQids())
}

func TestRawSubmission_Parse_Invalid(t *testing.T) {
	one, three := 1, 3
	timeTaken := int64(10)
	testCases := []struct {
		name string
		raw  RawSubmission
		// 期望出现的错误信息
		contains []string
		wantCnt  int
	}{
		{
			name: "缺少必填字段",
			raw: RawSubmission{
				Answers: map[string]string{},
			},
			contains: []string{
				"testData.degree is required",
				"testData.totalQuestions is required",
				"testData.timeTaken is required",
			},
			wantCnt: 3,
		},
		{
			name: "题目 ID 不是数字",
			raw: RawSubmission{
				Answers: map[string]string{"abc": "A", "-1": "B"},
				Meta:    RawTestMeta{Degree: "Bpharm", Total: &three, TimeTaken: &timeTaken},
			},
			contains: []string{
				`answers: invalid question id "-1"`,
				`answers: invalid question id "abc"`,
			},
			wantCnt: 2,
		},
		{
			name: "作答数量超过题目数量",
			raw: RawSubmission{
				Answers: map[string]string{"1": "A", "2": "B"},
				Meta:    RawTestMeta{Degree: "Both", Total: &one, TimeTaken: &timeTaken},
			},
			contains: []string{"answers: 2 answers exceed totalQuestions 1"},
			wantCnt:  1,
		},
		{
			name: "题目列表和题目数量对不上",
			raw: RawSubmission{
				Answers: map[string]string{"1": "A"},
				Meta: RawTestMeta{Degree: "Dpharm", Total: &three, TimeTaken: &timeTaken,
					Questions: []int64{1, 2}},
			},
			contains: []string{"questions: 2 questions does not match totalQuestions 3"},
			wantCnt:  1,
		},
		{
			name: "答案不是选项",
			raw: RawSubmission{
				Answers: map[string]string{"1": "E"},
				Meta:    RawTestMeta{Degree: "Mpharm", Total: &one, TimeTaken: &timeTaken},
			},
			wantCnt: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.raw.Parse(7)
			var ve *errs.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
			assert.Len(t, ve.Violations, tc.wantCnt)
			for _, msg := range tc.contains {
				assert.Contains(t, ve.Violations, msg)
			}
		})
	}
}
