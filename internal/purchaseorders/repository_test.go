package purchaseorders

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type recordingRow struct{}

func (recordingRow) Scan(dest ...any) error { return nil }

// recordingTx counts statements so tests can fail a specific item insert
// and observe whether the transaction committed or rolled back.
type recordingTx struct {
	pgx.Tx
	execCalls   int
	failOnExec  int
	execErr     error
	committed   bool
	rolledBack  bool
	itemStmts   int
}

func (t *recordingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return recordingRow{}
}

func (t *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execCalls++
	if strings.Contains(sql, "purchase_order_items") {
		t.itemStmts++
	}
	if t.failOnExec > 0 && t.execCalls == t.failOnExec {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.CommandTag{}, nil
}

func (t *recordingTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(ctx context.Context) error {
	// Mirror pgx semantics: Rollback after a successful Commit is a no-op.
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type recordingQuerier struct {
	tx *recordingTx
}

func (q *recordingQuerier) Begin(ctx context.Context) (pgx.Tx, error) {
	return q.tx, nil
}

func (q *recordingQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("statement outside transaction")
}

func (q *recordingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("statement outside transaction")
}

func (q *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return recordingRow{}
}

func twoItemInput() CreateOrderInput {
	return CreateOrderInput{
		PONumber:     "PO-2025-010",
		VendorID:     "v1",
		DepartmentID: "d1",
		Items: []CreateOrderItemInput{
			{ItemDescription: "Laptops", Quantity: 2, UnitPrice: 100, TotalPrice: 200},
			{ItemDescription: "Monitors", Quantity: 1, UnitPrice: 100, TotalPrice: 100},
		},
	}
}

func TestCreateRollsBackWhenItemInsertFails(t *testing.T) {
	insertErr := errors.New("duplicate key value")
	// Exec call 1 is the first item insert; fail the second one.
	tx := &recordingTx{failOnExec: 2, execErr: insertErr}
	repo := NewRepository(&recordingQuerier{tx: tx})

	_, err := repo.Create(context.Background(), twoItemInput())
	require.ErrorIs(t, err, insertErr)
	require.True(t, tx.rolledBack, "a failed item insert must roll back the whole order")
	require.False(t, tx.committed)
}

func TestCreateCommitsOrderAndAllItems(t *testing.T) {
	tx := &recordingTx{}
	repo := NewRepository(&recordingQuerier{tx: tx})

	created, err := repo.Create(context.Background(), twoItemInput())
	require.NoError(t, err)
	require.True(t, tx.committed)
	require.False(t, tx.rolledBack)
	require.Equal(t, 2, tx.itemStmts)
	require.Len(t, created.Items, 2)
}

func TestDeleteRemovesItemsAndParentInOneTransaction(t *testing.T) {
	tx := &recordingTx{}
	repo := NewRepository(&recordingQuerier{tx: tx})

	require.NoError(t, repo.Delete(context.Background(), "po1"))
	require.True(t, tx.committed)
	require.Equal(t, 1, tx.itemStmts, "the item delete must run inside the transaction")
	require.Equal(t, 2, tx.execCalls)
}
