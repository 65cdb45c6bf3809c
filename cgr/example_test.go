package cgr_test

import (
	"fmt"

	"github.com/katalvlaran/cgrouting/cgr"
	"github.com/katalvlaran/cgrouting/contact"
)

// ExampleSearch finds the earliest-delivery route across two relayed
// contacts: a bundle ready at node 1 at time 0 reaches node 3 via node 2.
func ExampleSearch() {
	plan := contact.NewPlan([]contact.Contact{
		contact.New(1, 2, 0, 10, 1),
		contact.New(2, 3, 0, 10, 1),
	})
	root := contact.New(1, 1, 0, 1_000_000, 1)

	r := cgr.Search(plan, root, 3)

	fmt.Printf("hops=%d best_delivery_time=%d\n", len(r.Hops()), r.BestDeliveryTime())
	// Output: hops=2 best_delivery_time=2
}

// ExampleSearch_unreachable shows the empty-Route result when no path
// exists to the destination.
func ExampleSearch_unreachable() {
	plan := contact.NewPlan([]contact.Contact{
		contact.New(1, 2, 0, 10, 1),
	})
	root := contact.New(1, 1, 0, 1_000_000, 1)

	r := cgr.Search(plan, root, 9)

	fmt.Println("reachable:", len(r.Hops()) > 0)
	// Output: reachable: false
}
