package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"librarygateway/internal/catalog"
	"librarygateway/internal/correlation"
	"librarygateway/internal/httperr"
	"librarygateway/internal/models"
	"librarygateway/internal/validate"
)

// GatewayHandler holds the request handlers. Each handler is a state-free
// pipeline: validate -> remote call -> shape -> respond. The catalog client
// is injected so tests can substitute one; no handler touches shared
// mutable state.
type GatewayHandler struct {
	catalog catalog.Client
	logger  *zap.Logger
}

// RegisterRoutes wires all gateway endpoints onto r.
func RegisterRoutes(r *gin.Engine, client catalog.Client, logger *zap.Logger) {
	h := &GatewayHandler{catalog: client, logger: logger}

	// Book management
	r.GET("/books", h.listBooks)
	r.GET("/available-books", h.listAvailableBooks)
	r.POST("/books", h.createBook)
	r.PUT("/books/:id", h.updateBook)
	r.DELETE("/books/:id", h.deleteBook)

	// Member management
	r.GET("/members", h.listMembers)
	r.POST("/members", h.createMember)
	r.PUT("/members/:id", h.updateMember)
	r.DELETE("/members/:id", h.deleteMember)

	// Loans
	r.POST("/borrow", h.borrowBook)
	r.POST("/return", h.returnBook)
	r.GET("/loans", h.listLoans)
}

// ─── Response Helpers ─────────────────────────────────────────────────────────

// badRequest reports a client input error. These are caught before any
// remote call and are never logged as server errors.
func (h *GatewayHandler) badRequest(c *gin.Context, msg string) {
	h.logger.Warn("request validation failed",
		zap.String("request_id", correlation.FromContext(c.Request.Context())),
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", msg),
	)
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// remoteError translates a catalog failure through the error mapper. Full
// internal detail is logged; only the mapped public message is returned.
func (h *GatewayHandler) remoteError(c *gin.Context, op string, err error) {
	status, msg := httperr.Map(err)
	h.logger.Error("catalog call failed",
		zap.String("request_id", correlation.FromContext(c.Request.Context())),
		zap.String("operation", op),
		zap.String("kind", httperr.Kind(err).String()),
		zap.Int("http_status", status),
		zap.Error(err),
	)
	c.JSON(status, gin.H{"message": msg})
}

// shapeError reports a malformed success response from the catalog service.
// Logged distinctly from remote failures: it indicates a contract mismatch,
// not a business rejection.
func (h *GatewayHandler) shapeError(c *gin.Context, op string) {
	h.logger.Error("catalog response shape mismatch",
		zap.String("request_id", correlation.FromContext(c.Request.Context())),
		zap.String("operation", op),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Response processing error"})
}

// ─── Book Management ──────────────────────────────────────────────────────────

// bookInput is the book payload of create requests. The integer fields are
// typed loosely because clients send them both as numbers and as strings;
// they are normalized to non-negative ints before the remote call.
type bookInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear any    `json:"published_year"`
	CopiesTotal   any    `json:"copies_total"`
}

func (h *GatewayHandler) listBooks(c *gin.Context) {
	books, err := h.catalog.ListBooks(c.Request.Context())
	if err != nil {
		h.remoteError(c, "ListBooks", err)
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// listAvailableBooks filters the catalog to books with at least one copy on
// the shelf, for borrow-form dropdowns.
func (h *GatewayHandler) listAvailableBooks(c *gin.Context) {
	books, err := h.catalog.ListBooks(c.Request.Context())
	if err != nil {
		h.remoteError(c, "ListBooks", err)
		return
	}
	available := make([]models.Book, 0, len(books))
	for _, b := range books {
		if b.CopiesAvailable > 0 {
			available = append(available, b)
		}
	}
	c.JSON(http.StatusOK, available)
}

func (h *GatewayHandler) createBook(c *gin.Context) {
	var req struct {
		Book *bookInput `json:"book"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}
	if req.Book == nil {
		h.badRequest(c, "book payload missing")
		return
	}
	if !validate.RequiredString(req.Book.Title) {
		h.badRequest(c, "title is required")
		return
	}
	if !validate.RequiredString(req.Book.Author) {
		h.badRequest(c, "author is required")
		return
	}

	book := models.Book{
		Title:         strings.TrimSpace(req.Book.Title),
		Author:        strings.TrimSpace(req.Book.Author),
		ISBN:          strings.TrimSpace(req.Book.ISBN),
		PublishedYear: validate.NonNegativeInt(req.Book.PublishedYear),
		CopiesTotal:   validate.NonNegativeInt(req.Book.CopiesTotal),
	}

	created, err := h.catalog.CreateBook(c.Request.Context(), book)
	if err != nil {
		h.remoteError(c, "CreateBook", err)
		return
	}
	if created == nil {
		h.shapeError(c, "CreateBook")
		return
	}
	c.JSON(http.StatusOK, created)
}

// bookUpdateInput mirrors bookInput with pointer fields: only fields the
// caller actually sent are forwarded, so a partial update cannot zero
// unrelated fields.
type bookUpdateInput struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ISBN          *string `json:"isbn"`
	PublishedYear *int    `json:"published_year"`
	CopiesTotal   *int    `json:"copies_total"`
}

func (h *GatewayHandler) updateBook(c *gin.Context) {
	id, ok := validate.IsPositiveInt(c.Param("id"))
	if !ok {
		h.badRequest(c, "Invalid book id")
		return
	}

	var req struct {
		Book *bookUpdateInput `json:"book"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}
	if req.Book == nil {
		h.badRequest(c, "book payload missing")
		return
	}

	fields := catalog.BookUpdate{
		Title:         req.Book.Title,
		Author:        req.Book.Author,
		ISBN:          req.Book.ISBN,
		PublishedYear: clampNonNegative(req.Book.PublishedYear),
		CopiesTotal:   clampNonNegative(req.Book.CopiesTotal),
	}

	updated, err := h.catalog.UpdateBook(c.Request.Context(), id, fields)
	if err != nil {
		h.remoteError(c, "UpdateBook", err)
		return
	}
	if updated == nil {
		h.shapeError(c, "UpdateBook")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *GatewayHandler) deleteBook(c *gin.Context) {
	id, ok := validate.IsPositiveInt(c.Param("id"))
	if !ok {
		h.badRequest(c, "Invalid book id")
		return
	}
	if err := h.catalog.DeleteBook(c.Request.Context(), id); err != nil {
		h.remoteError(c, "DeleteBook", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ─── Member Management ────────────────────────────────────────────────────────

type memberInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *GatewayHandler) listMembers(c *gin.Context) {
	members, err := h.catalog.ListMembers(c.Request.Context())
	if err != nil {
		h.remoteError(c, "ListMembers", err)
		return
	}
	if members == nil {
		members = []models.Member{}
	}
	c.JSON(http.StatusOK, members)
}

func (h *GatewayHandler) createMember(c *gin.Context) {
	var req struct {
		Member *memberInput `json:"member"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}
	if req.Member == nil {
		h.badRequest(c, "member payload missing")
		return
	}
	if !validate.RequiredString(req.Member.Name) {
		h.badRequest(c, "name is required")
		return
	}
	if !validate.RequiredString(req.Member.Email) {
		h.badRequest(c, "email is required")
		return
	}

	member := models.Member{
		Name:    strings.TrimSpace(req.Member.Name),
		Email:   strings.TrimSpace(req.Member.Email),
		Phone:   strings.TrimSpace(req.Member.Phone),
		Address: strings.TrimSpace(req.Member.Address),
	}

	created, err := h.catalog.CreateMember(c.Request.Context(), member)
	if err != nil {
		h.remoteError(c, "CreateMember", err)
		return
	}
	if created == nil {
		h.shapeError(c, "CreateMember")
		return
	}
	c.JSON(http.StatusOK, created)
}

type memberUpdateInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *GatewayHandler) updateMember(c *gin.Context) {
	id, ok := validate.IsPositiveInt(c.Param("id"))
	if !ok {
		h.badRequest(c, "Invalid member id")
		return
	}

	var req struct {
		Member *memberUpdateInput `json:"member"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}
	if req.Member == nil {
		h.badRequest(c, "member payload missing")
		return
	}

	fields := catalog.MemberUpdate{
		Name:    req.Member.Name,
		Email:   req.Member.Email,
		Phone:   req.Member.Phone,
		Address: req.Member.Address,
	}

	updated, err := h.catalog.UpdateMember(c.Request.Context(), id, fields)
	if err != nil {
		h.remoteError(c, "UpdateMember", err)
		return
	}
	if updated == nil {
		h.shapeError(c, "UpdateMember")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *GatewayHandler) deleteMember(c *gin.Context) {
	id, ok := validate.IsPositiveInt(c.Param("id"))
	if !ok {
		h.badRequest(c, "Invalid member id")
		return
	}
	if err := h.catalog.DeleteMember(c.Request.Context(), id); err != nil {
		h.remoteError(c, "DeleteMember", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ─── Loans ────────────────────────────────────────────────────────────────────

// borrowBook requires book id, member id, and a well-formed due date; a
// malformed due date stops the request before any remote call is made.
func (h *GatewayHandler) borrowBook(c *gin.Context) {
	var req struct {
		BookID   any    `json:"book_id"`
		MemberID any    `json:"member_id"`
		DueDate  string `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	bookID, okBook := validate.IsPositiveInt(req.BookID)
	memberID, okMember := validate.IsPositiveInt(req.MemberID)
	if !okBook || !okMember {
		h.badRequest(c, "Invalid IDs")
		return
	}

	dueDate, ok := validate.ParseCalendarDate(req.DueDate)
	if !ok {
		h.badRequest(c, "Invalid due date")
		return
	}

	loan, err := h.catalog.BorrowBook(c.Request.Context(), bookID, memberID, dueDate)
	if err != nil {
		h.remoteError(c, "BorrowBook", err)
		return
	}
	if loan == nil {
		h.shapeError(c, "BorrowBook")
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *GatewayHandler) returnBook(c *gin.Context) {
	var req struct {
		LoanID any `json:"loan_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	loanID, ok := validate.IsPositiveInt(req.LoanID)
	if !ok {
		h.badRequest(c, "Invalid loan id")
		return
	}

	loan, err := h.catalog.ReturnBook(c.Request.Context(), loanID)
	if err != nil {
		h.remoteError(c, "ReturnBook", err)
		return
	}
	if loan == nil {
		h.shapeError(c, "ReturnBook")
		return
	}
	c.JSON(http.StatusOK, loan)
}

// listLoans returns all loans, or only one member's when ?member_id= names
// a positive id. The member filter delegates to the member-scoped remote
// operation so the scoping stays on the catalog side.
func (h *GatewayHandler) listLoans(c *gin.Context) {
	var loans []models.Loan
	var err error
	var op string

	if memberID, ok := validate.IsPositiveInt(c.Query("member_id")); ok {
		op = "ListLoansForMember"
		loans, err = h.catalog.ListLoansForMember(c.Request.Context(), memberID)
	} else {
		op = "ListAllLoans"
		loans, err = h.catalog.ListAllLoans(c.Request.Context())
	}
	if err != nil {
		h.remoteError(c, op, err)
		return
	}
	if loans == nil {
		loans = []models.Loan{}
	}
	c.JSON(http.StatusOK, loans)
}

// clampNonNegative floors a provided negative value at zero; nil passes
// through untouched so absent fields stay absent.
func clampNonNegative(n *int) *int {
	if n != nil && *n < 0 {
		zero := 0
		return &zero
	}
	return n
}
