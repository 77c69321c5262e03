package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPFAcceptsValidNumbers(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
		"111 444 777 35",
	}
	for _, cpf := range valid {
		assert.True(t, ValidateCPF(cpf), "expected %q to be valid", cpf)
	}
}

func TestValidateCPFRejectsInvalidNumbers(t *testing.T) {
	invalid := []string{
		"",
		"123",
		"529.982.247-24",      // wrong second check digit
		"529.982.247-15",      // wrong first check digit
		"111.111.111-11",      // repeated digit
		"000.000.000-00",      // repeated digit
		"52998224a25",         // letter
		"529.982.247-251",     // too long
	}
	for _, cpf := range invalid {
		assert.False(t, ValidateCPF(cpf), "expected %q to be invalid", cpf)
	}
}
