package category

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Node is an immutable balance-range category. Both bounds are inclusive; an
// invalid Max means the range is unbounded above.
type Node struct {
	name     string
	min      decimal.Decimal
	max      decimal.NullDecimal
	children []*Node
}

// Unbounded is the Max of a range with no upper limit.
var Unbounded = decimal.NullDecimal{}

// Upto returns an inclusive upper bound.
func Upto(upper decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(upper)
}

// New builds a node, rejecting inverted ranges and children that are not
// fully enclosed by the parent.
func New(name string, lower decimal.Decimal, upper decimal.NullDecimal, children ...*Node) (*Node, error) {
	if upper.Valid && upper.Decimal.LessThan(lower) {
		return nil, fmt.Errorf("category %q: max %s below min %s", name, upper.Decimal, lower)
	}
	n := &Node{name: name, min: lower, max: upper}
	for _, child := range children {
		if !n.encloses(child) {
			return nil, fmt.Errorf("category %q: child %q range not enclosed", name, child.name)
		}
	}
	n.children = append([]*Node(nil), children...)
	return n, nil
}

// MustNew is New for trees that are fixed at compile time.
func MustNew(name string, lower decimal.Decimal, upper decimal.NullDecimal, children ...*Node) *Node {
	n, err := New(name, lower, upper, children...)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node) Name() string { return n.name }

func (n *Node) MinBalance() decimal.Decimal { return n.min }

func (n *Node) MaxBalance() decimal.NullDecimal { return n.max }

func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) Contains(balance decimal.Decimal) bool {
	if balance.LessThan(n.min) {
		return false
	}
	return !n.max.Valid || balance.LessThanOrEqual(n.max.Decimal)
}

func (n *Node) encloses(child *Node) bool {
	if child.min.LessThan(n.min) {
		return false
	}
	if !n.max.Valid {
		return true
	}
	return child.max.Valid && child.max.Decimal.LessThanOrEqual(n.max.Decimal)
}

// FindOptimalCategory returns the deepest node containing balance, preferring
// earlier siblings on overlap, or nil when the root does not contain it.
func (n *Node) FindOptimalCategory(balance decimal.Decimal) *Node {
	if !n.Contains(balance) {
		return nil
	}
	for _, child := range n.children {
		if found := child.FindOptimalCategory(balance); found != nil {
			return found
		}
	}
	return n
}

// DefaultTree is the category tree the service classifies accounts with.
func DefaultTree() *Node {
	thousand := decimal.NewFromInt(1000)
	threeThousand := decimal.NewFromInt(3000)
	fiveThousand := decimal.NewFromInt(5000)

	return MustNew("Root", decimal.Zero, Unbounded,
		MustNew("Basic", decimal.Zero, Upto(thousand)),
		MustNew("Premium", thousand, Upto(fiveThousand),
			MustNew("PremiumPlus", threeThousand, Upto(fiveThousand)),
		),
		MustNew("Elite", fiveThousand, Unbounded),
	)
}
