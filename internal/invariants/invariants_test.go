package invariants

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestRowsFit(t *testing.T) {
	var tests = []struct {
		rows, lead, width int
		want              bool
	}{
		{0, 0, 8, true},
		{8, 0, 8, true},
		{9, 0, 8, false},
		{4, 11, 16, true},
		{5, 11, 16, false},
		{64, 64, 128, true},
		{65, 64, 128, false},
	}

	for _, test := range tests {
		require.Equal(t, test.want, RowsFit(test.rows, test.lead, test.width),
			"rows=%d lead=%d width=%d", test.rows, test.lead, test.width)
	}
}

func TestCheckRows(t *testing.T) {
	require.NotPanics(t, func() { CheckRows(16, 0, 16) })
	require.NotPanics(t, func() { CheckRows(4, 11, 16) })

	if !Enabled {
		require.NotPanics(t, func() { CheckRows(17, 0, 16) })
		return
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "expected an error, got %T", r)
		require.True(t, errors.IsAssertionFailure(err))
		require.Contains(t, err.Error(), "17 rows after 0 leading bits overflow a 16-bit word")
	}()
	CheckRows(17, 0, 16)
}
