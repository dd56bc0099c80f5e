package testdata

// Credentials is a valid record next to invalid ones and must still be generated.
//
//builder:generate
type Credentials struct {
	Username string
	Password string `builder:"ignore"`
}

// UnknownKeyword uses a keyword buildergen does not know.
//
//builder:generate
type UnknownKeyword struct {
	Host string
	Port int `builder:"skip"`
}

// TwoKeywords has two identifiers in one builder tag.
//
//builder:generate
type TwoKeywords struct {
	Host string `builder:"ignore other"`
}

// Embedded has a field without a name.
//
//builder:generate
type Embedded struct {
	Credentials
	Host string
}

// Shape is not a struct.
//
//builder:generate
type Shape interface {
	Area() float64
}

// Collision has two fields whose setters would share a name.
//
//builder:generate
type Collision struct {
	name string
	Name string
}
