package models

import "fmt"

// The gateway owns no entities. These types describe the wire shape of the
// catalog service's records as they cross the REST boundary; the invariants
// behind them (copies_available <= copies_total, email uniqueness, loan
// status transitions) are enforced by the catalog engine and never
// re-derived here.

type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "borrowed"
	LoanStatusReturned LoanStatus = "returned"
)

// CalendarDate is a plain (year, month, day) triple. Values are produced
// only by validate.ParseCalendarDate; a partial CalendarDate never exists.
type CalendarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String renders the canonical YYYY-MM-DD form.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublishedYear   int    `json:"published_year"`
	CopiesTotal     int    `json:"copies_total"`
	CopiesAvailable int    `json:"copies_available"`
}

type Member struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Loan struct {
	ID       int64 `json:"id"`
	BookID   int64 `json:"book_id"`
	MemberID int64 `json:"member_id"`
	// Timestamps travel as RFC 3339 strings on the wire.
	BorrowedAt string        `json:"borrowed_at"`
	DueDate    *CalendarDate `json:"due_date,omitempty"`
	ReturnedAt string        `json:"returned_at,omitempty"`
	Status     LoanStatus    `json:"status"`
}
