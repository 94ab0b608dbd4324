// meta/meta.go
package meta

// CUTOFF defines the search depth at which positions are scored as neutral.
const CUTOFF = 6

// HEURISTIC names the evaluation used at the cutoff.
const HEURISTIC = "neutral"

// STARTER decides who opens a game: "ask", "human" or "computer".
const STARTER = "ask"

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"

// GAMES defines the number of games per agent config in an experiment.
const GAMES = 10

// SEED seeds the random opponent in experiments.
const SEED = 1

// EXPERIMENTS_DIR is where experiment CSV files are written.
const EXPERIMENTS_DIR = "results"

// CUTOFFS defines the cutoff depths compared by the cutoff experiment.
var CUTOFFS = []int{2, 4, 6}
