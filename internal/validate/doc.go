// Package validate checks resolved or declared unit values against numeric
// constraints. Validators return an Outcome instead of keeping error state,
// so a validator can be shared between goroutines.
package validate
