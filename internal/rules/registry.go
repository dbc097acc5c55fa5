// Package rules manages registration of import rules.
package rules

import (
	"fmt"

	"github.com/donaldgifford/importcurly/internal/formatter"
)

var registered []formatter.Rule

// Register adds a rule to the registry. Rules are checked in the order
// they are registered. Registering a name twice panics.
func Register(r formatter.Rule) {
	if _, ok := Lookup(r.Name()); ok {
		panic(fmt.Sprintf("importcurly: duplicate rule registration: %s", r.Name()))
	}
	registered = append(registered, r)
}

// All returns all registered rules in execution order.
func All() []formatter.Rule {
	return registered
}

// Lookup returns the rule registered under name.
func Lookup(name string) (formatter.Rule, bool) {
	for _, r := range registered {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}
