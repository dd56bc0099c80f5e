package testdata

// IgnoreTagTest exercises builder tag handling.
type IgnoreTagTest struct {
	// No tag: generates SetName
	Name string

	// Skipped
	Internal int `builder:"ignore"`

	// Repeated ignore is accepted
	Secret string `builder:"ignore" builder:"ignore"`

	// Tags under other keys are left alone
	Port int `json:"port" yaml:"port"`

	// Mixed with other keys
	InternalData []byte `json:"-" builder:"ignore"`

	// One line, two fields
	minRetries, maxRetries int

	// Blank fields cannot be assigned
	_ struct{}
}

// AllIgnored has no settable fields; its methods block is empty.
type AllIgnored struct {
	A int `builder:"ignore"`
	B int `builder:"ignore"`
}
