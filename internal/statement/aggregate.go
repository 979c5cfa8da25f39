package statement

import (
	"github.com/contalibre-dev/contalibre/internal/chart"
)

// aggregateClass folds an account-id -> sums map through one class subtree,
// producing its statement node. Leaf accounts with activity come first, then
// aggregated child classes, both in chart order. A class with no active
// leaves and no surviving children aggregates to nil: empty branches are
// pruned from the statement, not reported as zero rows.
//
// Recursion depth is bounded by chart depth; cycles are rejected earlier,
// when the tree is built from its parent pointers.
func aggregateClass(c *chart.Class, balances map[uint]AggregatedBalance) *Node {
	node := &Node{Code: c.Code, Name: c.Name}

	for _, a := range c.Accounts {
		b, ok := balances[a.ID]
		if !ok || b.zero() {
			continue
		}
		family := a.Family()
		if family == 0 {
			family = c.Family()
		}
		node.Children = append(node.Children, &Node{
			Code:        a.Code,
			Name:        a.Name,
			TotalDebit:  b.TotalDebit,
			TotalCredit: b.TotalCredit,
			Balance:     signedBalance(b.TotalDebit, b.TotalCredit, family),
		})
		node.TotalDebit = node.TotalDebit.Add(b.TotalDebit)
		node.TotalCredit = node.TotalCredit.Add(b.TotalCredit)
	}

	for _, child := range c.Children {
		sub := aggregateClass(child, balances)
		if sub == nil {
			continue
		}
		node.Children = append(node.Children, sub)
		node.TotalDebit = node.TotalDebit.Add(sub.TotalDebit)
		node.TotalCredit = node.TotalCredit.Add(sub.TotalCredit)
	}

	if len(node.Children) == 0 && node.TotalDebit.IsZero() && node.TotalCredit.IsZero() {
		return nil
	}

	// The node's own family decides the sign, not a child's.
	node.Balance = signedBalance(node.TotalDebit, node.TotalCredit, c.Family())
	return node
}
