package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utsab8/Ecommerce-Cart-System/internal/validate"
)

func TestEmail(t *testing.T) {
	for _, good := range []string{"a@b.co", "alice@nepshop.test", "x.y+z@example.org"} {
		_, ok := validate.Email(good)
		assert.True(t, ok, good)
	}
	for _, bad := range []string{"", "nope", "a@b", "a b@c.com"} {
		_, ok := validate.Email(bad)
		assert.False(t, ok, bad)
	}
}

func TestPrice(t *testing.T) {
	p, ok := validate.Price(" 12.50 ")
	assert.True(t, ok)
	assert.Equal(t, "12.5", p.String())

	for _, bad := range []string{"", "0", "-1", "abc", "1.2.3"} {
		_, ok := validate.Price(bad)
		assert.False(t, ok, bad)
	}
}

func TestStock(t *testing.T) {
	n, ok := validate.Stock("0")
	assert.True(t, ok)
	assert.Zero(t, n)

	n, ok = validate.Stock("15")
	assert.True(t, ok)
	assert.Equal(t, 15, n)

	for _, bad := range []string{"", "-1", "five"} {
		_, ok := validate.Stock(bad)
		assert.False(t, ok, bad)
	}
}

func TestID(t *testing.T) {
	n, ok := validate.ID("42")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, bad := range []string{"", "0", "-3", "abc", "1e3"} {
		_, ok := validate.ID(bad)
		assert.False(t, ok, bad)
	}
}

func TestDOB(t *testing.T) {
	_, ok := validate.DOB("1995-04-12")
	assert.True(t, ok)

	for _, bad := range []string{"", "12/04/1995", "3000-01-01"} {
		_, ok := validate.DOB(bad)
		assert.False(t, ok, bad)
	}
}

func TestPassword(t *testing.T) {
	assert.True(t, validate.Password("Passw0rd!"))
	for _, bad := range []string{"", "short1!", "alllowercase1!", "NOLOWER1!", "NoDigits!!", "NoSymbol11"} {
		assert.False(t, validate.Password(bad), bad)
	}
}
