package commons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	require.Equal(t, Marketing, ParsePhase("marketing"))
	require.Equal(t, Construction, ParsePhase(" CONSTRUCTION "))
	require.Equal(t, Other, ParsePhase("unknown"))
	require.Equal(t, "Sales", Sales.String())
	require.Equal(t, "Other", Phase(42).String())
}

func TestDateKey(t *testing.T) {
	a := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 11, 1, 1, 0, 0, 0, time.UTC)
	require.Equal(t, 20240309, DateKey(a))
	require.Less(t, DateKey(a), DateKey(b))
}

func TestRecordStrings(t *testing.T) {
	e := Expenditure{
		Code:      "EXP0001",
		Amount:    Cents(150000),
		Date:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Phase:     Construction,
		Category:  "Cement",
		AccountID: "ACC1",
	}
	require.Equal(t, "(code=EXP0001,amount=1500.00,date=2024-01-02,phase=Construction,category=Cement,account=ACC1)", e.String())
}
