package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAllocator_Allocate(t *testing.T) {
	testCases := []struct {
		name      string
		seconds   int
		count     int
		want      Allotment
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:    "十道题",
			seconds: 60,
			count:   10,
			want: Allotment{
				TotalSeconds: 600,
				Breakdown:    AllotmentBreakdown{Questions: 10, SecondsPerQuestion: 60, Minutes: 10, Seconds: 0},
			},
			assertErr: assert.NoError,
		},
		{
			name:    "零道题",
			seconds: 60,
			count:   0,
			want: Allotment{
				Breakdown: AllotmentBreakdown{SecondsPerQuestion: 60},
			},
			assertErr: assert.NoError,
		},
		{
			name:    "不是整分钟",
			seconds: 45,
			count:   3,
			want: Allotment{
				TotalSeconds: 135,
				Breakdown:    AllotmentBreakdown{Questions: 3, SecondsPerQuestion: 45, Minutes: 2, Seconds: 15},
			},
			assertErr: assert.NoError,
		},
		{
			name:    "非法配置使用默认值",
			seconds: 0,
			count:   2,
			want: Allotment{
				TotalSeconds: 120,
				Breakdown:    AllotmentBreakdown{Questions: 2, SecondsPerQuestion: 60, Minutes: 2, Seconds: 0},
			},
			assertErr: assert.NoError,
		},
		{
			name:      "负数",
			seconds:   60,
			count:     -1,
			assertErr: assert.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewTimeAllocator(tc.seconds).Allocate(tc.count)
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestAllotment_ClampTimeTaken(t *testing.T) {
	a, err := NewTimeAllocator(60).Allocate(2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.ClampTimeTaken(-5))
	assert.Equal(t, int64(45), a.ClampTimeTaken(45))
	assert.Equal(t, int64(120), a.ClampTimeTaken(900))
}
