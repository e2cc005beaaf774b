package billing

import "strings"

const defaultCountry = "Portugal"

// shippingAddress is the free-text shipping address decomposed for invoicing.
type shippingAddress struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// splitShippingAddress splits the free-text address on commas: street,
// postal code, city. Missing segments stay empty; the country is always
// Portugal.
func splitShippingAddress(raw string) shippingAddress {
	parts := strings.Split(raw, ",")
	addr := shippingAddress{Country: defaultCountry}
	if len(parts) > 0 {
		addr.Street = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		addr.PostalCode = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		addr.City = strings.TrimSpace(parts[2])
	}
	return addr
}
