// Package catalog binds the gateway to the external catalog service's
// procedure set. The binding is pure transport: it performs no retries and
// no failure interpretation — classifying a remote failure is the error
// mapper's job, and the copy-count and loan-state invariants behind these
// operations belong to the catalog engine alone.
package catalog

import (
	"context"

	"librarygateway/internal/models"
)

// Client is the typed binding to the catalog service's twelve operations.
// Implementations must be safe for concurrent use by many in-flight
// requests; handlers receive a Client by injection so tests can substitute
// one.
type Client interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, id int64, fields BookUpdate) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListMembers(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, member models.Member) (*models.Member, error)
	UpdateMember(ctx context.Context, id int64, fields MemberUpdate) (*models.Member, error)
	DeleteMember(ctx context.Context, id int64) error

	BorrowBook(ctx context.Context, bookID, memberID int64, dueDate models.CalendarDate) (*models.Loan, error)
	ReturnBook(ctx context.Context, loanID int64) (*models.Loan, error)
	ListAllLoans(ctx context.Context) ([]models.Loan, error)
	ListLoansForMember(ctx context.Context, memberID int64) ([]models.Loan, error)
}

// BookUpdate carries the fields of a partial book update. Unset fields are
// omitted from the payload entirely so an update can never zero a field the
// caller did not provide.
type BookUpdate struct {
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	PublishedYear *int    `json:"published_year,omitempty"`
	CopiesTotal   *int    `json:"copies_total,omitempty"`
}

// MemberUpdate carries the fields of a partial member update.
type MemberUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
