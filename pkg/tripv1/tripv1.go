// Package tripv1 holds the request and response messages of the tripsplit.v1
// Connect services. Messages travel as JSON; field names are camelCase.
package tripv1

// Member is one participant of a trip. UserID may be left blank on create,
// the server assigns one.
type Member struct {
	UserID   string `json:"userId,omitempty"`
	UserName string `json:"userName" validate:"required,notblank"`
}

type Trip struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []Member `json:"members"`
	CreatedAt int64    `json:"createdAt"`
}

type Expense struct {
	ID            string             `json:"id"`
	TripID        string             `json:"tripId"`
	Description   string             `json:"description"`
	PaidBy        string             `json:"paidBy"`
	Amount        float64            `json:"amount"`
	SplitStrategy string             `json:"splitStrategy"`
	SplitAmong    []string           `json:"splitAmong"`
	Shares        map[string]float64 `json:"shares,omitempty"`
	CreatedAt     int64              `json:"createdAt"`
}

// Share is what one participant owes for one expense.
type Share struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

type Payment struct {
	ID         string  `json:"id"`
	TripID     string  `json:"tripId"`
	FromUserID string  `json:"fromUserId"`
	ToUserID   string  `json:"toUserId"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note,omitempty"`
	CreatedAt  int64   `json:"createdAt"`
	CreatedBy  string  `json:"createdBy,omitempty"`
}

type MemberBalance struct {
	UserID    string  `json:"userId"`
	UserName  string  `json:"userName"`
	TotalPaid float64 `json:"totalPaid"`
	TotalOwed float64 `json:"totalOwed"`
	Balance   float64 `json:"balance"`
}

type DebtSettlement struct {
	From     string  `json:"from"`
	FromName string  `json:"fromName"`
	To       string  `json:"to"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

type ExpensesSummary struct {
	TotalExpenses    float64          `json:"totalExpenses"`
	AveragePerPerson float64          `json:"averagePerPerson"`
	MemberBalances   []MemberBalance  `json:"memberBalances"`
	Settlements      []DebtSettlement `json:"settlements"`
	MyBalance        *MemberBalance   `json:"myBalance,omitempty"`
}

// TripService messages

type CreateTripRequest struct {
	Name    string   `json:"name,omitempty"`
	Members []Member `json:"members" validate:"required,min=1,dive"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID string `json:"tripId" validate:"required,notblank"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

type UpdateTripRequest struct {
	TripID string `json:"tripId" validate:"required,notblank"`
	Name   string `json:"name" validate:"required,notblank"`
}

type UpdateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripID string `json:"tripId" validate:"required,notblank"`
}

type DeleteTripResponse struct{}

type AddMembersRequest struct {
	TripID  string   `json:"tripId" validate:"required,notblank"`
	Members []Member `json:"members" validate:"required,min=1,dive"`
}

type AddMembersResponse struct {
	// Added lists the members that were not on the roster yet.
	Added []Member `json:"added"`
	Trip  *Trip    `json:"trip"`
}

type GetTripSummaryRequest struct {
	TripID string `json:"tripId" validate:"required,notblank"`
}

type GetTripSummaryResponse struct {
	Summary *ExpensesSummary `json:"summary"`
}

// ExpenseService messages

type CreateExpenseRequest struct {
	TripID        string             `json:"tripId" validate:"required,notblank"`
	Description   string             `json:"description" validate:"required,notblank"`
	PaidBy        string             `json:"paidBy" validate:"required,notblank"`
	Amount        float64            `json:"amount" validate:"gt=0,lte=1000000000000"`
	SplitStrategy string             `json:"splitStrategy,omitempty" validate:"omitempty,oneof=equal exact"`
	SplitAmong    []string           `json:"splitAmong" validate:"dive,notblank"`
	Shares        map[string]float64 `json:"shares,omitempty" validate:"dive,gte=0,lte=1000000000000"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
	Shares  []Share  `json:"shares"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expenseId" validate:"required,notblank"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
	Shares  []Share  `json:"shares"`
}

type UpdateExpenseRequest struct {
	ExpenseID     string             `json:"expenseId" validate:"required,notblank"`
	Description   string             `json:"description" validate:"required,notblank"`
	PaidBy        string             `json:"paidBy" validate:"required,notblank"`
	Amount        float64            `json:"amount" validate:"gt=0,lte=1000000000000"`
	SplitStrategy string             `json:"splitStrategy,omitempty" validate:"omitempty,oneof=equal exact"`
	SplitAmong    []string           `json:"splitAmong" validate:"dive,notblank"`
	Shares        map[string]float64 `json:"shares,omitempty" validate:"dive,gte=0,lte=1000000000000"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
	Shares  []Share  `json:"shares"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId" validate:"required,notblank"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct {
	TripID string `json:"tripId" validate:"required,notblank"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

// PreviewSplitRequest computes shares without storing anything.
type PreviewSplitRequest struct {
	Amount        float64            `json:"amount" validate:"gt=0,lte=1000000000000"`
	SplitStrategy string             `json:"splitStrategy,omitempty" validate:"omitempty,oneof=equal exact"`
	SplitAmong    []string           `json:"splitAmong" validate:"dive,notblank"`
	Shares        map[string]float64 `json:"shares,omitempty" validate:"dive,gte=0,lte=1000000000000"`
}

type PreviewSplitResponse struct {
	Shares []Share `json:"shares"`
}

type RecordPaymentRequest struct {
	TripID     string  `json:"tripId" validate:"required,notblank"`
	FromUserID string  `json:"fromUserId" validate:"required,notblank"`
	ToUserID   string  `json:"toUserId" validate:"required,notblank,nefield=FromUserID"`
	Amount     float64 `json:"amount" validate:"gt=0,lte=1000000000000"`
	Note       string  `json:"note,omitempty" validate:"max=200"`
}

type RecordPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type DeletePaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required,notblank"`
}

type DeletePaymentResponse struct{}

type ListPaymentsRequest struct {
	TripID string `json:"tripId" validate:"required,notblank"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}
