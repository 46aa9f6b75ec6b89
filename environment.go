package rest

import "strings"

// An Environment is a different context in which a rest app operates.
type Environment string

const (
	Demo        Environment = "DEMO"
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Demo, Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsTesting() bool { return e == Testing }

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting any casing of a valid Environment.
func (e *Environment) UnmarshalText(b []byte) error {
	env := Environment(strings.ToUpper(strings.TrimSpace(string(b))))
	if err := env.Valid(); err != nil {
		return err
	}

	*e = env
	return nil
}
