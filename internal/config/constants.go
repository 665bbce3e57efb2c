package config

// Integer sampling range. The sampler draws inputs from this window and the
// example generator rejects any output falling outside it.
const (
	InputMin   = -256
	InputMax   = 255
	IntegerMin = -256
	IntegerMax = 255
)

// ListLength is the default upper bound used when a list constraint leaves
// its max length unset.
const ListLength = 20

// ExampleNum is the bundle size: dataset size is accounted in multiples of
// this many examples per program.
const ExampleNum = 5

// AttributeVectorLength is the flat-vector length of an Attribute: 15
// functions (17 minus ReadInt/ReadList) + 4 predicates + 10 one-arg lambdas
// + 5 two-arg lambdas.
const AttributeVectorLength = 15 + 4 + 10 + 5
