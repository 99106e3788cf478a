package entity

import "time"

type Timetable struct {
	Base
	Department  string    `db:"department"`
	Year        string    `db:"year"`
	SubjectName string    `db:"subject_name"`
	ExamDate    time.Time `db:"exam_date"`
	StartTime   string    `db:"start_time"`
	EndTime     string    `db:"end_time"`
	ExamType    string    `db:"exam_type"`
}
