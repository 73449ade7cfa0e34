package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
)

// storeError maps a storage failure to a Connect error and logs it.
// Lookup misses become CodeNotFound, everything else CodeInternal.
func storeError(op string, err error, attrs ...any) error {
	attrs = append(attrs, "error", err)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Warn(op+" failed - not found", attrs...)
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", attrs...)
	return connect.NewError(connect.CodeInternal, err)
}

func toPBMembers(members []models.Member) []tripv1.Member {
	out := make([]tripv1.Member, len(members))
	for i, m := range members {
		out[i] = tripv1.Member{UserID: m.UserID, UserName: m.UserName}
	}
	return out
}

func toModelMembers(members []tripv1.Member) []models.Member {
	out := make([]models.Member, len(members))
	for i, m := range members {
		out[i] = models.Member{UserID: m.UserID, UserName: m.UserName}
	}
	return out
}

func toPBTrip(trip *models.Trip) *tripv1.Trip {
	return &tripv1.Trip{
		ID:        trip.ID,
		Name:      trip.Name,
		Members:   toPBMembers(trip.Members),
		CreatedAt: trip.CreatedAt,
	}
}

func toPBExpense(e *models.Expense) *tripv1.Expense {
	return &tripv1.Expense{
		ID:            e.ID,
		TripID:        e.TripID,
		Description:   e.Description,
		PaidBy:        e.PaidBy,
		Amount:        e.Amount,
		SplitStrategy: e.SplitStrategy,
		SplitAmong:    e.SplitAmong,
		Shares:        e.Shares,
		CreatedAt:     e.CreatedAt,
	}
}

func toPBPayment(p *models.Payment) *tripv1.Payment {
	return &tripv1.Payment{
		ID:         p.ID,
		TripID:     p.TripID,
		FromUserID: p.FromUserID,
		ToUserID:   p.ToUserID,
		Amount:     p.Amount,
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
		CreatedBy:  p.CreatedBy,
	}
}

func toCalcMembers(members []models.Member) []calculator.Member {
	out := make([]calculator.Member, len(members))
	for i, m := range members {
		out[i] = calculator.Member{UserID: m.UserID, UserName: m.UserName}
	}
	return out
}

func toCalcExpense(e *models.Expense) calculator.Expense {
	return calculator.Expense{
		ID:         e.ID,
		PaidBy:     e.PaidBy,
		Amount:     e.Amount,
		SplitAmong: e.SplitAmong,
		Strategy:   calculator.SplitStrategy(e.SplitStrategy),
		Shares:     e.Shares,
	}
}

func toCalcExpenses(expenses []*models.Expense) []calculator.Expense {
	out := make([]calculator.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toCalcExpense(e)
	}
	return out
}

func toCalcPayment(p *models.Payment) calculator.Payment {
	return calculator.Payment{From: p.FromUserID, To: p.ToUserID, Amount: p.Amount}
}

func toCalcPayments(payments []*models.Payment) []calculator.Payment {
	out := make([]calculator.Payment, len(payments))
	for i, p := range payments {
		out[i] = toCalcPayment(p)
	}
	return out
}

func toPBShares(shares []calculator.Share) []tripv1.Share {
	out := make([]tripv1.Share, len(shares))
	for i, s := range shares {
		out[i] = tripv1.Share{UserID: s.UserID, Amount: s.Amount}
	}
	return out
}

func toPBBalance(b calculator.MemberBalance) tripv1.MemberBalance {
	return tripv1.MemberBalance{
		UserID:    b.UserID,
		UserName:  b.UserName,
		TotalPaid: b.TotalPaid,
		TotalOwed: b.TotalOwed,
		Balance:   b.Balance,
	}
}

func toPBSummary(s calculator.ExpensesSummary) *tripv1.ExpensesSummary {
	out := &tripv1.ExpensesSummary{
		TotalExpenses:    s.TotalExpenses,
		AveragePerPerson: s.AveragePerPerson,
		MemberBalances:   make([]tripv1.MemberBalance, len(s.MemberBalances)),
		Settlements:      make([]tripv1.DebtSettlement, len(s.Settlements)),
	}
	for i, b := range s.MemberBalances {
		out.MemberBalances[i] = toPBBalance(b)
	}
	for i, d := range s.Settlements {
		out.Settlements[i] = tripv1.DebtSettlement{
			From:     d.From,
			FromName: d.FromName,
			To:       d.To,
			ToName:   d.ToName,
			Amount:   d.Amount,
		}
	}
	if s.MyBalance != nil {
		mine := toPBBalance(*s.MyBalance)
		out.MyBalance = &mine
	}
	return out
}
