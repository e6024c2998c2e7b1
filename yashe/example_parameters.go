package yashe

// Example parameter sets. TinyTest is only meant for unit tests and worked
// examples; MiddleRes and FullRes carry enough noise budget for one
// homomorphic multiplication over their respective iris resolutions.
var (
	// TinyTest: toy parameters, insecure, fast.
	TinyTest = ParametersLiteral{
		LogN:  3,
		Q:     65537,
		T:     2,
		Sigma: 1.0,
	}

	// MiddleRes: parameters for the reduced iris resolution.
	MiddleRes = ParametersLiteral{
		LogN:  9,
		Q:     2305843009213693951, // 2^61 - 1
		T:     1024,
		Sigma: 3.2,
	}

	// FullRes: parameters for the full iris resolution.
	FullRes = ParametersLiteral{
		LogN:  11,
		Q:     2305843009213693951, // 2^61 - 1
		T:     1024,
		Sigma: 3.2,
	}
)
