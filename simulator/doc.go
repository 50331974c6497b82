// Package simulator estimates daily review load for an sm2 deck.
//
// It runs a seeded Monte Carlo simulation: a deck of new cards is
// introduced over time, every card due on a simulated day is answered with
// a response drawn from [Probabilities], and the outcome is scheduled and
// merged exactly the way an application would. The result reports how many
// reviews land on each day, which makes the effect of load balancing and
// other settings visible before they reach real learners.
//
// # Usage
//
//	sim, err := simulator.NewSimulator(simulator.Config{Cards: 500, Days: 180})
//	res, err := sim.Run(ctx, sm2.DefaultSettings())
//	fmt.Println(res.Peak, res.Stats.Mature)
//
// Response probabilities can be estimated from an existing review history
// with [ProbabilitiesFromLogs].
package simulator
