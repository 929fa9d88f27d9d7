// Package travelopts keeps track of trade-offs between the price and the
// duration of travel options, and combines them leg by leg.
//
// What is in the box?
//
//	• options/  - the option List: Pareto checks, sorted inserts, union,
//	              pruning, sequential and parallel joins, budget splits
//	• builder/  - deterministic generators of fixture lists
//	• optfile/  - YAML/JSON documents with exact decimal prices
//	• cmd/      - the travelopts CLI (cobra + viper + zerolog)
//	• examples/ - runnable walkthroughs
//
// Quick example:
//
//	flight := options.FromPairs([][2]float64{{129, 3.5}, {89, 6}})
//	bus := options.FromPairs([][2]float64{{25, 4}, {70, 2}})
//	trip := flight.JoinPlusPlus(bus)
//	_ = trip.Display(os.Stdout)
//
// An option (p1,t1) dominates (p2,t2) when it is no dearer, no slower and
// not identical. A frontier keeps only undominated options; sorted by
// price it is strictly cheaper-and-slower to dearer-and-faster.
package travelopts
