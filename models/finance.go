// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// TransactionStatus tracks whether a transaction has been settled.
type TransactionStatus string

const (
	TransactionPaid    TransactionStatus = "PAID"
	TransactionPending TransactionStatus = "PENDING"
)

// Valid reports whether s is a known transaction status.
func (s TransactionStatus) Valid() bool {
	return s == TransactionPaid || s == TransactionPending
}

// DateLayout is the wire and storage format of [Date].
const DateLayout = time.DateOnly

// Date is a calendar day without a time zone, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements [driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements [sql.Scanner] for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// MonthRange returns the first day of the given month and the first day of
// the following month.
func MonthRange(year int, month time.Month) (Date, Date) {
	start := NewDate(year, month, 1)
	return start, Date{start.AddDate(0, 1, 0)}
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          string            `json:"id"`
	UserID      int64             `json:"-"`
	CategoryID  *string           `json:"category_id"`
	Description string            `json:"description"`
	AmountCents int64             `json:"amount_cents"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Date        Date              `json:"date"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Category labels transactions. Global categories have no owner and are
// visible to every user but editable by none.
type Category struct {
	ID        string    `json:"id"`
	UserID    *int64    `json:"-"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlySummary aggregates a month of transactions. All amounts are in
// cents.
type MonthlySummary struct {
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	BalanceCents int64 `json:"balance_cents"`
	PaidCents    int64 `json:"paid_cents"`
	PendingCents int64 `json:"pending_cents"`
}

// Summarize folds transactions into a MonthlySummary. Balance is income
// minus expense. Paid and pending totals count both directions.
func Summarize(year int, month time.Month, transactions []Transaction) MonthlySummary {
	summary := MonthlySummary{Year: year, Month: int(month)}
	for _, t := range transactions {
		switch t.Type {
		case TransactionIncome:
			summary.IncomeCents += t.AmountCents
		case TransactionExpense:
			summary.ExpenseCents += t.AmountCents
		}

		switch t.Status {
		case TransactionPaid:
			summary.PaidCents += t.AmountCents
		case TransactionPending:
			summary.PendingCents += t.AmountCents
		}
	}
	summary.BalanceCents = summary.IncomeCents - summary.ExpenseCents
	return summary
}
