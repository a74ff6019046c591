// Package query provides the query algebra and its evaluator.
//
// A query is a tree of five node kinds:
//
//   - Value wraps a concrete table
//   - Select projects columns of its target
//   - Filter keeps the rows of its target matching a condition
//   - NewCol appends a constant column to its target
//   - Merge joins two sub-queries on a key column
//
// Eval walks the tree bottom-up, evaluating each node's targets before
// applying the node's table operation. A failure anywhere in the tree is
// returned to the caller wrapped with the path of node kinds it went
// through; nothing is cached between evaluations.
//
// The package also includes a small text language that builds query trees:
//
//	merge(Name,
//	    select([Name, Age], filter(Age > 26 and Name like 'A%', people)),
//	    cities)
//
// Sources (people, cities above, or quoted paths) are turned into Value
// nodes by a Resolver supplied to Parse.
//
// Example usage:
//
//	q, err := query.Parse(`filter(Age > 26, "people.csv")`, catalog)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := query.Eval(q)
package query
