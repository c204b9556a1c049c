package catalog

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"librarygateway/internal/correlation"
	"librarygateway/internal/models"
)

// methodPrefix is the fully qualified service path from the shared
// interface-definition file.
const methodPrefix = "/library.Library/"

// requestIDKey is the outbound metadata key carrying the correlation id.
const requestIDKey = "x-request-id"

// GRPCClient implements Client over a single long-lived connection. The
// connection is opened at startup, lives for the process lifetime, and is
// safe for concurrent use by all in-flight requests.
type GRPCClient struct {
	conn *grpc.ClientConn
}

var _ Client = (*GRPCClient)(nil)

// Dial connects to the catalog service at target (host:port). The gateway
// deliberately sets no per-call deadline; cancellation of the inbound
// request context is the only thing that aborts an in-flight call.
func Dial(target string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("dial catalog service %s: %w", target, err)
	}
	return &GRPCClient{conn: conn}, nil
}

// Close releases the underlying connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) invoke(ctx context.Context, method string, args, reply any) error {
	if id := correlation.FromContext(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, requestIDKey, id)
	}
	return c.conn.Invoke(ctx, methodPrefix+method, args, reply)
}

// Request/response envelopes mirror the message shapes of the shared
// schema: list responses wrap their collection, single-entity responses
// wrap the entity.

type emptyRequest struct{}

type idRequest struct {
	ID int64 `json:"id"`
}

type booksResponse struct {
	Books []models.Book `json:"books"`
}

type bookResponse struct {
	Book *models.Book `json:"book"`
}

type membersResponse struct {
	Members []models.Member `json:"members"`
}

type memberResponse struct {
	Member *models.Member `json:"member"`
}

type loansResponse struct {
	Loans []models.Loan `json:"loans"`
}

type loanResponse struct {
	Loan *models.Loan `json:"loan"`
}

func (c *GRPCClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var resp booksResponse
	if err := c.invoke(ctx, "ListBooks", &emptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Books, nil
}

func (c *GRPCClient) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	req := struct {
		Book models.Book `json:"book"`
	}{Book: book}
	var resp bookResponse
	if err := c.invoke(ctx, "CreateBook", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Book, nil
}

func (c *GRPCClient) UpdateBook(ctx context.Context, id int64, fields BookUpdate) (*models.Book, error) {
	req := struct {
		ID int64 `json:"id"`
		BookUpdate
	}{ID: id, BookUpdate: fields}
	var resp bookResponse
	if err := c.invoke(ctx, "UpdateBook", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Book, nil
}

func (c *GRPCClient) DeleteBook(ctx context.Context, id int64) error {
	var resp emptyRequest
	return c.invoke(ctx, "DeleteBook", &idRequest{ID: id}, &resp)
}

func (c *GRPCClient) ListMembers(ctx context.Context) ([]models.Member, error) {
	var resp membersResponse
	if err := c.invoke(ctx, "ListMembers", &emptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

func (c *GRPCClient) CreateMember(ctx context.Context, member models.Member) (*models.Member, error) {
	req := struct {
		Member models.Member `json:"member"`
	}{Member: member}
	var resp memberResponse
	if err := c.invoke(ctx, "CreateMember", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Member, nil
}

func (c *GRPCClient) UpdateMember(ctx context.Context, id int64, fields MemberUpdate) (*models.Member, error) {
	req := struct {
		ID int64 `json:"id"`
		MemberUpdate
	}{ID: id, MemberUpdate: fields}
	var resp memberResponse
	if err := c.invoke(ctx, "UpdateMember", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Member, nil
}

func (c *GRPCClient) DeleteMember(ctx context.Context, id int64) error {
	var resp emptyRequest
	return c.invoke(ctx, "DeleteMember", &idRequest{ID: id}, &resp)
}

func (c *GRPCClient) BorrowBook(ctx context.Context, bookID, memberID int64, dueDate models.CalendarDate) (*models.Loan, error) {
	req := struct {
		BookID   int64               `json:"book_id"`
		MemberID int64               `json:"member_id"`
		DueDate  models.CalendarDate `json:"due_date"`
	}{BookID: bookID, MemberID: memberID, DueDate: dueDate}
	var resp loanResponse
	if err := c.invoke(ctx, "BorrowBook", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Loan, nil
}

func (c *GRPCClient) ReturnBook(ctx context.Context, loanID int64) (*models.Loan, error) {
	req := struct {
		LoanID int64 `json:"loan_id"`
	}{LoanID: loanID}
	var resp loanResponse
	if err := c.invoke(ctx, "ReturnBook", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Loan, nil
}

func (c *GRPCClient) ListAllLoans(ctx context.Context) ([]models.Loan, error) {
	var resp loansResponse
	if err := c.invoke(ctx, "ListAllLoans", &emptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Loans, nil
}

func (c *GRPCClient) ListLoansForMember(ctx context.Context, memberID int64) ([]models.Loan, error) {
	req := struct {
		MemberID int64 `json:"member_id"`
	}{MemberID: memberID}
	var resp loansResponse
	if err := c.invoke(ctx, "ListLoansForMember", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Loans, nil
}
