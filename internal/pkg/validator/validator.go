package validator

// Validator validates a struct against its declared rules.
//
// A nil return means the value passed every rule. Implementations should
// return an error type that carries per-field detail when validation fails.
type Validator interface {
	Validate(data any) error
}
