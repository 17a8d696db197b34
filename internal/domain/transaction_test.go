package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	testCases := []struct {
		kind TransactionKind
		dir  Direction
		want int
	}{
		{KindDeposit, DirectionNone, 1},
		{KindWithdraw, DirectionNone, -1},
		{KindServiceCharge, DirectionNone, -1},
		{KindBillPay, DirectionNone, -1},
		{KindTransfer, DirectionIncoming, 1},
		{KindTransfer, DirectionOutgoing, -1},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, Sign(tc.kind, tc.dir), "%v %v", tc.kind, tc.dir)
	}
}

func TestTransactionSigned(t *testing.T) {
	amount := decimal.RequireFromString("12.34")

	out := Transaction{Kind: KindTransfer, Direction: DirectionOutgoing, Amount: amount}
	require.True(t, out.Signed().Equal(amount.Neg()))

	in := Transaction{Kind: KindTransfer, Direction: DirectionIncoming, Amount: amount}
	require.True(t, in.Signed().Equal(amount))
}

func TestTransactionKindCodes(t *testing.T) {
	for _, kind := range []TransactionKind{KindDeposit, KindWithdraw, KindTransfer, KindServiceCharge, KindBillPay} {
		got, err := ParseTransactionKind(kind.Code())
		require.NoError(t, err)
		require.Equal(t, kind, got)
	}

	_, err := ParseTransactionKind("X")
	require.Error(t, err)
}

func TestTransactionKindJSON(t *testing.T) {
	b, err := json.Marshal(Transaction{Kind: KindServiceCharge, Amount: decimal.RequireFromString("0.05")})
	require.NoError(t, err)
	require.Contains(t, string(b), `"kind":"ServiceCharge"`)
	require.Contains(t, string(b), `"amount":"0.05"`)

	var k TransactionKind
	require.NoError(t, k.UnmarshalText([]byte("BillPay")))
	require.Equal(t, KindBillPay, k)
}

func TestTransactionLabel(t *testing.T) {
	require.Equal(t, "Transfer Incoming", Transaction{Kind: KindTransfer, Direction: DirectionIncoming}.Label())
	require.Equal(t, "Transfer Outgoing", Transaction{Kind: KindTransfer, Direction: DirectionOutgoing}.Label())
	require.Equal(t, "Service Charge", Transaction{Kind: KindServiceCharge}.Label())
	require.Equal(t, "Deposit", Transaction{Kind: KindDeposit}.Label())
}
