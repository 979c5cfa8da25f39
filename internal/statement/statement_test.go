package statement

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/model"
)

// Shared test fixtures: a small five-family chart and fake store boundaries.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

const (
	acctCaja      uint = 101
	acctBanco     uint = 102
	acctPrestamos uint = 201
	acctCapital   uint = 301
	acctVentas    uint = 401
	acctSueldos   uint = 501
)

// testChart builds the fixture tree:
//
//	1 Activo      > 11 Disponible  > 11102 Caja, 11103 Banco
//	2 Pasivo      > 21 Prestamos   > 21101 Prestamos Bancarios
//	3 Patrimonio  > 31 Capital     > 31101 Capital Pagado
//	4 Ingresos    > 41 Ventas      > 41101 Ventas de Mercaderia
//	5 Egresos     > 52 Gastos      > 52101 Sueldos y Salarios
func testChart() *chart.Tree {
	classes := []model.AccountClass{
		{ID: 1, Code: "1", Name: "Activo"},
		{ID: 11, Code: "11", Name: "Disponible", ParentID: ptr(uint(1))},
		{ID: 2, Code: "2", Name: "Pasivo"},
		{ID: 21, Code: "21", Name: "Prestamos", ParentID: ptr(uint(2))},
		{ID: 3, Code: "3", Name: "Patrimonio"},
		{ID: 31, Code: "31", Name: "Capital", ParentID: ptr(uint(3))},
		{ID: 4, Code: "4", Name: "Ingresos"},
		{ID: 41, Code: "41", Name: "Ventas", ParentID: ptr(uint(4))},
		{ID: 5, Code: "5", Name: "Egresos"},
		{ID: 52, Code: "52", Name: "Gastos", ParentID: ptr(uint(5))},
	}
	accounts := []model.Account{
		{ID: acctCaja, ClassID: 11, Code: "11102", Name: "Caja", Active: true},
		{ID: acctBanco, ClassID: 11, Code: "11103", Name: "Banco", Active: true},
		{ID: acctPrestamos, ClassID: 21, Code: "21101", Name: "Prestamos Bancarios", Active: true},
		{ID: acctCapital, ClassID: 31, Code: "31101", Name: "Capital Pagado", Active: true},
		{ID: acctVentas, ClassID: 41, Code: "41101", Name: "Ventas de Mercaderia", Active: true},
		{ID: acctSueldos, ClassID: 52, Code: "52101", Name: "Sueldos y Salarios", Active: true},
	}
	tree, err := chart.BuildTree(classes, accounts)
	if err != nil {
		panic(err)
	}
	return tree
}

// fakeStore serves both builder boundaries from in-memory maps: cumulative
// for calls without a lower bound, period for calls with one.
type fakeStore struct {
	tree       *chart.Tree
	cumulative map[uint]AggregatedBalance
	period     map[uint]AggregatedBalance

	chartErr error
	fetchErr error

	fetchCalls int
}

func (f *fakeStore) FetchBalances(_ context.Context, _ uint, _ []model.Family, _ time.Time, lower *time.Time) (map[uint]AggregatedBalance, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	src := f.cumulative
	if lower != nil {
		src = f.period
	}
	out := make(map[uint]AggregatedBalance, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) LoadChart(_ context.Context, _ uint, _ []model.Family) (*chart.Tree, error) {
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	return f.tree, nil
}

func bal(debit, credit string) AggregatedBalance {
	return AggregatedBalance{TotalDebit: dec(debit), TotalCredit: dec(credit)}
}

var errStoreDown = errors.New("store down")
