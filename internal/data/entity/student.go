package entity

// Student approval lifecycle. Only approved, unblocked, active students are
// eligible for seating.
const (
	StudentStatusPending  = "pending"
	StudentStatusApproved = "approved"
	StudentStatusBlocked  = "blocked"
)

type Student struct {
	Base
	Name     string `db:"name"`
	RollNo   string `db:"roll_no"`
	Branch   string `db:"branch"`
	Year     string `db:"year"`
	Approved bool   `db:"approved"`
	Blocked  bool   `db:"blocked"`
	Active   bool   `db:"active"`
}

// Status collapses the approval flags into the state shown to admins.
func (s *Student) Status() string {
	switch {
	case s.Blocked:
		return StudentStatusBlocked
	case s.Approved:
		return StudentStatusApproved
	default:
		return StudentStatusPending
	}
}
