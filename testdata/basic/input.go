package testdata

// Something is the record from the README.
//
//builder:generate
type Something struct {
	field1       uint32
	field2       string
	ignoredField uint32 `builder:"ignore"`
}
