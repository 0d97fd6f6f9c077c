package store

import (
	"testing"

	"github.com/dmitrijs2005/passlist/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords_FieldCountFilter(t *testing.T) {
	raw := "three\tfields\tonly\n" +
		"four\tme\tpw\t2020/01/02\n" +
		"five\tme\tpw\t2020/01/02\tnote\n" +
		"emptymemo\tme\tpw\t2020/01/02\t\n" +
		"six\tme\tpw\t2020/01/02\tnote\textra\n"

	got := parseRecords(raw)
	require.Equal(t, []string{"four", "five", "emptymemo"}, names(got))

	_, ok := got[0].MemoText()
	assert.False(t, ok, "4 fields means no memo")

	memo, ok := got[1].MemoText()
	assert.True(t, ok)
	assert.Equal(t, "note", memo)

	memo, ok = got[2].MemoText()
	assert.True(t, ok, "5 fields means memo present even when empty")
	assert.Equal(t, "", memo)
}

func TestParseRecords_SkipsBlankLines(t *testing.T) {
	raw := "\n\na\tx\ty\t2021/01/01\n\nb\tx\ty\t2021/01/02\n\n"

	got := parseRecords(raw)
	require.Equal(t, []string{"a", "b"}, names(got))
	assert.Equal(t, "2021/01/01", got[0].UpdateTime.String())
}

func TestParseRecords_CarriageReturnBelongsToLastField(t *testing.T) {
	raw := "a\tx\ty\t2021/01/01\tmemo\r\nb\tx\tpw\r\t2021/01/02\n"

	got := parseRecords(raw)
	require.Equal(t, []string{"a", "b"}, names(got))

	memo, _ := got[0].MemoText()
	assert.Equal(t, "memo\r", memo)
	assert.Equal(t, "pw\r", got[1].Password)
	assert.Equal(t, raw, formatRecords(got))
}

func TestParseRecords_KeepsLinesWithUnparsedDates(t *testing.T) {
	raw := "bank\tme\tpw\t2020/1/5\n" +
		"gmail\tme\tpw\t2020/01/05\n" +
		"mail\tme\tpw\t2020-01-05\tnote\n" +
		"shop\tme\tpw\t2020/02/30\n"

	got := parseRecords(raw)
	require.Equal(t, []string{"bank", "gmail", "mail", "shop"}, names(got))
	assert.Equal(t, "2020/1/5", got[0].UpdateTime.String())
	assert.False(t, got[0].UpdateTime.Valid())
	assert.True(t, got[1].UpdateTime.Valid())

	assert.Equal(t, raw, formatRecords(got))
}

func TestParseRecords_EmptyInput(t *testing.T) {
	assert.Empty(t, parseRecords(""))
}

func TestFormatLine(t *testing.T) {
	r := rec(t, "github", "me@example.com", "2024/02/03")
	assert.Equal(t, "github\tme@example.com\tpw-github\t2024/02/03", formatLine(r))

	r.SetMemo("2fa on phone")
	assert.Equal(t, "github\tme@example.com\tpw-github\t2024/02/03\t2fa on phone", formatLine(r))

	r.SetMemo("")
	assert.Equal(t, "github\tme@example.com\tpw-github\t2024/02/03\t", formatLine(r))
}

func TestRoundTrip_AnyOrder(t *testing.T) {
	a := rec(t, "a", "1", "2019/12/31")
	b := rec(t, "b", "2", "2020/01/01")
	b.SetMemo("memo b")
	c := rec(t, "c", "3", "2020/06/15")
	c.SetMemo("")

	for _, in := range [][]*models.Record{
		{a, b, c},
		{c, a, b},
		{b, c, a},
	} {
		got := parseRecords(formatRecords(in))
		if diff := cmp.Diff(in, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
