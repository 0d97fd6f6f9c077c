package store

import (
	"strings"

	"github.com/dmitrijs2005/passlist/internal/client/models"
	"github.com/dmitrijs2005/passlist/internal/common"
)

const (
	fieldsWithoutMemo = 4
	fieldsWithMemo    = 5
)

// parseLine decodes one line. ok is false for lines with a wrong field
// count. A date field that is not YYYY/MM/DD is kept verbatim.
func parseLine(line string) (*models.Record, bool) {
	fields := strings.Split(line, common.FieldSeparator)
	if len(fields) != fieldsWithoutMemo && len(fields) != fieldsWithMemo {
		return nil, false
	}

	r := &models.Record{
		Name:       fields[0],
		AccountID:  fields[1],
		Password:   fields[2],
		UpdateTime: models.DateFromText(fields[3]),
	}
	if len(fields) == fieldsWithMemo {
		r.SetMemo(fields[4])
	}
	return r, true
}

// parseRecords decodes raw file text in file order. Lines end at "\n"
// only; a "\r" before it belongs to the last field.
func parseRecords(raw string) []*models.Record {
	lines := strings.Split(raw, "\n")
	records := make([]*models.Record, 0, len(lines))

	for _, line := range lines {
		if line == "" {
			continue
		}
		if r, ok := parseLine(line); ok {
			records = append(records, r)
		}
	}
	return records
}

func formatLine(r *models.Record) string {
	fields := []string{r.Name, r.AccountID, r.Password, r.UpdateTime.String()}
	if memo, ok := r.MemoText(); ok {
		fields = append(fields, memo)
	}
	return strings.Join(fields, common.FieldSeparator)
}

// formatRecords encodes records one per line, each line newline-terminated.
func formatRecords(records []*models.Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(formatLine(r))
		b.WriteByte('\n')
	}
	return b.String()
}
