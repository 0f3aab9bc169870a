/*
Package macexpect computes the exact expected completion time and energy of a
duty-cycled wireless MAC protocol by enumerating every execution branch.

# Concept

Three sensor nodes wake up for one slot at multiples of their own period. A
gateway broadcasts a preamble carrying the address of one unfinished node in
two out of every three slots. A node that hears its own address replies and
goes silent for good. The engine walks the tree of every possible run, carrying
the probability, elapsed slots and spent energy of each branch, and folds the
branches where all nodes replied into two expectations.

# Key Features

  - Exact: no sampling, every branch is enumerated and weighted.
  - Deterministic: the same model always yields the same numbers.
  - Cached: results can be stored by model fingerprint (memory or Redis).
  - Observable: lifecycle hooks feed logs and Prometheus metrics.

# Usage

For the default protocol, a single call is enough:

	t, e := macexpect.Run()
	fmt.Println(t, e) // 22.52126200274349 379.2661179698216

Custom parameters go through an Analyzer:

	a := macexpect.New(macexpect.WithStore(memory.NewStore()))

	m := domain.DefaultModel()
	m.ListenCost = 20

	res, err := a.Analyze(ctx, m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.ExpectedTime, res.ExpectedEnergy)
*/
package macexpect
