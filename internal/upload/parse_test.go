package upload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseStudentFileCSV(t *testing.T) {
	csvData := "name,roll_no,branch,year\n" +
		"Anil Kumar,CS101,CSE,2\n" +
		"Bhavya Reddy, CS102 ,CSE,2\n"

	rows, err := ParseStudentFile("roster.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{Name: "Anil Kumar", RollNo: "CS101", Branch: "CSE", Year: "2"}, rows[0])
	assert.Equal(t, "CS102", rows[1].RollNo, "cell whitespace is trimmed")
}

func TestParseStudentFileCSVAcceptsRollHeader(t *testing.T) {
	csvData := "Name,Roll,Branch,Year\nAnil Kumar,CS101,CSE,2\n"

	rows, err := ParseStudentFile("roster.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS101", rows[0].RollNo)
}

func TestParseStudentFileCSVShortRecord(t *testing.T) {
	csvData := "name,roll_no,branch,year\nAnil Kumar,CS101\n"

	rows, err := ParseStudentFile("roster.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS101", rows[0].RollNo)
	assert.Empty(t, rows[0].Branch)
}

func TestParseStudentFileXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"name", "roll_no", "branch", "year"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Anil Kumar", "CS101", "CSE", "2"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ParseStudentFile("roster.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Name: "Anil Kumar", RollNo: "CS101", Branch: "CSE", Year: "2"}, rows[0])
}

func TestParseStudentFileUnsupportedType(t *testing.T) {
	_, err := ParseStudentFile("roster.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidateRows(t *testing.T) {
	rows := []Row{
		{Name: "Anil Kumar", RollNo: "CS101", Branch: "CSE", Year: "2"},
		{Name: "", RollNo: "CS102", Branch: "CSE", Year: "2"},
		{Name: "Bhavya Reddy", RollNo: "CS103", Branch: "", Year: "2"},
	}

	valid, rejects := ValidateRows(rows)
	require.Len(t, valid, 1)
	assert.Equal(t, "CS101", valid[0].RollNo)

	require.Len(t, rejects, 2)
	assert.Equal(t, 1, rejects[0].Index)
	assert.Equal(t, 2, rejects[1].Index)
}
