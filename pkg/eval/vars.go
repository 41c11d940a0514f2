package eval

// Composite weights used when none are given
var DefaultWeights = Weights{
	Corner:   4000,
	Mobility: 1000,
	Material: 100,
	Frontier: -10,
}

// Set the weights used by ByName("composite")
func SetDefaultWeights(w Weights) {
	DefaultWeights = w
}
