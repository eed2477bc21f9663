//go:build unit

package testutil_test

import (
	"testing"

	"cellar-shop/tests/common/testutil"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Items []struct {
		Quantity int `json:"quantity"`
	} `json:"items"`
}

func TestField(t *testing.T) {
	var p payload
	p.Customer.Email = "ada@example.com"
	p.Items = append(p.Items, struct {
		Quantity int `json:"quantity"`
	}{Quantity: 2})

	m := testutil.DtoMap(t, p,
		testutil.Field("customer.email", "nope"),
		testutil.Field("items.0.quantity", -1),
		testutil.Field("missing.path", "ignored"),
	)

	assert.Equal(t, "nope", m["customer"].(map[string]any)["email"])
	assert.Equal(t, -1, m["items"].([]any)[0].(map[string]any)["quantity"])
	assert.NotContains(t, m, "missing")

	m = testutil.DtoMap(t, p, testutil.Field("customer", nil))
	assert.NotContains(t, m, "customer")
}
