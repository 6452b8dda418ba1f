package rstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParametersValid(t *testing.T) {
	assert.NoError(t, DefaultParameters().validate())
}

func TestParametersValidation(t *testing.T) {
	cases := []struct {
		name   string
		params Parameters
		wantOK bool
	}{
		{"min too small", Parameters{MinSize: 1, MaxSize: 6, ReinsertionCount: 2}, false},
		{"max too small for min", Parameters{MinSize: 4, MaxSize: 6, ReinsertionCount: 2}, false},
		{"reinsert zero", Parameters{MinSize: 3, MaxSize: 6, ReinsertionCount: 0}, false},
		{"reinsert too large", Parameters{MinSize: 3, MaxSize: 6, ReinsertionCount: 5}, false},
		{"valid boundary", Parameters{MinSize: 3, MaxSize: 6, ReinsertionCount: 4}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.params.validate()
			if c.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewWithParamsRejectsInvalid(t *testing.T) {
	_, err := NewWithParams[float64, *testPoint](Parameters{MinSize: 1, MaxSize: 2, ReinsertionCount: 1})
	assert.Error(t, err)
}
