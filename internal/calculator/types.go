package calculator

// Epsilon is the tolerance used when comparing amounts: anything below one
// cent is treated as zero.
const Epsilon = 0.01

// SplitStrategy selects how an expense is divided among its participants.
type SplitStrategy string

const (
	// SplitEqual divides the amount evenly; the last participant (by userId)
	// absorbs the rounding remainder.
	SplitEqual SplitStrategy = "equal"
	// SplitExact uses the explicit per-user Shares of the expense.
	SplitExact SplitStrategy = "exact"
)

// Member represents a participant of a trip.
type Member struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// Expense represents a single payment made by one member, split among a set of members.
type Expense struct {
	ID         string             `json:"id"`
	PaidBy     string             `json:"paidBy"`
	Amount     float64            `json:"amount"`
	SplitAmong []string           `json:"splitAmong"`
	Strategy   SplitStrategy      `json:"splitStrategy,omitempty"` // empty means SplitEqual
	Shares     map[string]float64 `json:"shares,omitempty"`        // only read for SplitExact
}

// Payment is money one member already handed to another to settle up.
type Payment struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Share is one participant's part of an expense.
type Share struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

// MemberBalance represents the balance information for one member.
type MemberBalance struct {
	UserID    string  `json:"userId"`
	UserName  string  `json:"userName"`
	TotalPaid float64 `json:"totalPaid"`
	TotalOwed float64 `json:"totalOwed"`
	Balance   float64 `json:"balance"` // Positive = owed money, Negative = owes money
}

// DebtSettlement is a directed transfer that reduces outstanding debt.
type DebtSettlement struct {
	From     string  `json:"from"`
	FromName string  `json:"fromName"`
	To       string  `json:"to"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

// ExpensesSummary is the aggregate result handed to presentation code.
type ExpensesSummary struct {
	TotalExpenses    float64          `json:"totalExpenses"`
	AveragePerPerson float64          `json:"averagePerPerson"`
	MemberBalances   []MemberBalance  `json:"memberBalances"`
	Settlements      []DebtSettlement `json:"settlements"`
	MyBalance        *MemberBalance   `json:"myBalance"`
}
