package css_test

import (
	"testing"

	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/style/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustCells(10)
	var n int
	switch m := ten.Match(); m {
	case m.Just(&n):
		t.Logf("n = %d", n)
	default:
		t.Errorf("expected Just(10) to be a fixed value, isn't: %#v", ten)
	}
	assert.Equal(t, 10, n)

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(80)
	switch m := pcnt.Match(); m {
	case m.Just(nil):
		t.Errorf("percentage must not match Just")
	case m.Percentage(&n):
		t.Logf("percent = %d", n)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	assert.Equal(t, 80, n)
}

func TestParseDimen(t *testing.T) {
	for _, tc := range []struct {
		in    style.Property
		out   string
		avail int
		cells int
		ok    bool
	}{
		{"auto", "auto", 100, 0, false},
		{"", "auto", 100, 0, false},
		{"12", "12", 100, 12, true},
		{"12ch", "12", 0, 12, true},
		{"50%", "50%", 80, 40, true},
		{"50%", "50%", 0, 0, false},
		{"2fr", "2fr", 100, 0, false},
	} {
		d, err := css.ParseDimen(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, d.String())
		cells, ok := d.Resolve(tc.avail)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.cells, cells, tc.in)
	}
	d, err := css.ParseDimen("wide")
	assert.Error(t, err)
	assert.True(t, d.IsAuto())
	d, _ = css.ParseDimen("3fr")
	assert.True(t, d.IsFraction())
}
