package domain

import "fmt"

// NotFoundError -> entitas tidak ditemukan (order, order item, code entry).
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func NewNotFoundError(entity string, keyFormat string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: fmt.Sprintf(keyFormat, args...)}
}

// InvalidTransitionError -> perpindahan status order yang tidak legal.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// InvariantViolationError -> data melanggar aturan domain, mis. lebih dari
// satu order aktif pada satu meja. Bukan kondisi user-facing.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

// OrderCreationError membungkus kegagalan di tengah pembuatan order multi-step.
// Baris yang sudah tertulis tidak di-rollback; caller memperlakukan ini sebagai
// operasi yang bisa diulang, bukan atomic.
type OrderCreationError struct {
	Step string
	Err  error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("failed to create order at step %q: %v", e.Step, e.Err)
}

func (e *OrderCreationError) Unwrap() error {
	return e.Err
}
