// Package report renders seating plans to PDF, one page sequence per room.
package report

import (
	"bytes"
	"fmt"

	"exam-seating/internal/seating"

	"github.com/jung-kurt/gofpdf"
)

// Occupant is the slice of a student shown in the PDF table.
type Occupant struct {
	Name   string
	RollNo string
	Branch string
	Year   string
}

// Seat is one occupied seat of a room.
type Seat struct {
	Label string
	One   *Occupant
	Two   *Occupant
}

// RoomPayload is everything needed to render one room's page(s). Seats holds
// only occupied seats; empty labels are filled in from the capacity.
type RoomPayload struct {
	RoomNo       string
	ExamType     string
	Capacity     int
	Invigilators []string
	Seats        []Seat
}

type column struct {
	label string
	width float64
}

var semesterColumns = []column{
	{"Seat", 18}, {"Name", 72}, {"Roll No", 40}, {"Branch", 40}, {"Year", 15},
}

var midColumns = []column{
	{"Seat", 12}, {"Name 1", 44}, {"Roll 1", 25}, {"Branch 1", 18},
	{"Name 2", 44}, {"Roll 2", 25}, {"Branch 2", 18},
}

const rowHeight = 8.0

// Builder renders seating plan PDFs with a fixed institute header.
type Builder struct {
	instituteName string
}

func NewBuilder(instituteName string) *Builder {
	return &Builder{instituteName: instituteName}
}

// BuildRoomPDF renders a single room.
func (b *Builder) BuildRoomPDF(payload RoomPayload) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	b.renderRoom(pdf, payload)
	return output(pdf)
}

// BuildCombinedPDF renders every room of a batch into one document.
func (b *Builder) BuildCombinedPDF(rooms []RoomPayload) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	for _, room := range rooms {
		b.renderRoom(pdf, room)
	}
	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) renderRoom(pdf *gofpdf.Fpdf, payload RoomPayload) {
	pdf.AddPage()
	b.renderMeta(pdf, payload)

	columns := semesterColumns
	if payload.ExamType == seating.ExamTypeMid {
		columns = midColumns
	}
	drawTableHeader(pdf, columns)

	rows := buildRows(payload)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		if pdf.GetY()+rowHeight > 282 {
			pdf.AddPage()
			b.renderMeta(pdf, payload)
			drawTableHeader(pdf, columns)
			pdf.SetFont("Helvetica", "", 9)
		}
		for i, col := range columns {
			pdf.CellFormat(col.width, rowHeight, row[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (b *Builder) renderMeta(pdf *gofpdf.Fpdf, payload RoomPayload) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, b.instituteName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "AUTONOMOUS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "SEATING PLAN", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "Exam Type: "+payload.ExamType, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Room No: "+payload.RoomNo, "", 1, "L", false, 0, "")
	if len(payload.Invigilators) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		list := ""
		for i, inv := range payload.Invigilators {
			if i > 0 {
				list += "; "
			}
			list += inv
		}
		pdf.CellFormat(0, 5, "Invigilator(s): "+list, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func drawTableHeader(pdf *gofpdf.Fpdf, columns []column) {
	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range columns {
		pdf.CellFormat(col.width, rowHeight, col.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// buildRows walks the full canonical label sequence so empty seats show up
// as EMPTY rows, matching the grid view.
func buildRows(payload RoomPayload) [][]string {
	byLabel := make(map[string]Seat, len(payload.Seats))
	for _, seat := range payload.Seats {
		byLabel[seat.Label] = seat
	}

	labels := seating.BuildSeatLabels(payload.Capacity)
	rows := make([][]string, 0, len(labels))
	mid := payload.ExamType == seating.ExamTypeMid
	for _, label := range labels {
		seat, ok := byLabel[label]
		if mid {
			rows = append(rows, midRow(label, seat, ok))
		} else {
			rows = append(rows, semesterRow(label, seat, ok))
		}
	}
	return rows
}

func semesterRow(label string, seat Seat, ok bool) []string {
	if !ok || seat.One == nil {
		return []string{label, "EMPTY", "-", "-", "-"}
	}
	return []string{label, seat.One.Name, seat.One.RollNo, seat.One.Branch, seat.One.Year}
}

func midRow(label string, seat Seat, ok bool) []string {
	if !ok || seat.One == nil {
		return []string{label, "EMPTY", "-", "-", "EMPTY", "-", "-"}
	}
	row := []string{label, seat.One.Name, seat.One.RollNo, seat.One.Branch}
	if seat.Two != nil {
		return append(row, seat.Two.Name, seat.Two.RollNo, seat.Two.Branch)
	}
	return append(row, "EMPTY", "-", "-")
}
