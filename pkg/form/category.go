package form

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// Category identifies what a form field holds and therefore how it is checked.
type Category string

const (
	FirstName            Category = "first_name"
	LastName             Category = "last_name"
	Address              Category = "address"
	City                 Category = "city"
	State                Category = "state"
	Zip                  Category = "zip"
	Country              Category = "country"
	Phone                Category = "phone"
	Email                Category = "email"
	Terms                Category = "terms"
	CardType             Category = "card_type"
	CreditCard           Category = "credit_card"
	CardMonth            Category = "card_month"
	CardYear             Category = "card_year"
	CCV                  Category = "ccv"
	Initials             Category = "initials"
	GrantType            Category = "grant_type"
	YearBorn             Category = "year_born"
	MaritalStatus        Category = "marital_status"
	HouseholdIncome      Category = "household_income"
	TimeCurrentResidence Category = "time_current_residence"
)

type aliasTable struct {
	category Category
	aliases  []string
}

// Field names recognised per category, in classification priority order.
// Matching ignores case.
var tables = []aliasTable{
	{FirstName, []string{
		"name", "first_name", "first-name", "name-first", "name_first", "first",
		"nameFirst", "firstName", "name-f", "name_f", "namef", "cc_name_f",
		"cc-name-f", "fname",
	}},
	{LastName, []string{
		"last", "last_name", "last-name", "name-last", "name_last", "nameLast",
		"lastName", "name-l", "name_l", "namel", "cc_name_l", "cc-name-l", "lname",
	}},
	{Address, []string{
		"address", "address1", "address2", "street", "street-address",
		"street_address", "address-1", "address_1", "address-2", "address_2",
		"address-3", "address_3", "street-address-1", "street_address_1",
		"street-address-2", "street_address_2", "street_address_3",
		"street-address-3", "cc_street", "cc-street", "Contact0Street1",
	}},
	{City, []string{"city", "town", "cc_city", "cc-city", "Contact0City"}},
	{State, []string{
		"state", "cc_state", "cc-state", "billing_state", "billing-state",
		"shipping-state", "shipping_state",
	}},
	{Zip, []string{"zip", "zipcode", "postalcode"}},
	{Country, []string{"country", "Contact0Country"}},
	{Phone, []string{
		"phone", "phoneNumber", "phone1", "phone2", "phone3", "phone-1", "phone-2",
		"phone_1", "phone_2", "billing_phone", "cc_phone", "billing-phone",
		"cc-phone", "card-phone", "card_phone", "phone-billing", "phone_billing",
		"phone_card", "phone-card", "phone-cc", "phone_cc",
	}},
	{Email, []string{
		"email", "email2", "email3", "emailAddress", "emailAddress1",
		"emailAddress2", "email-address", "email-address-1", "email-address-2",
		"email_address", "email_address_1", "email_address_2", "email1",
	}},
	{Terms, []string{
		"terms", "termsandconditions", "terms-and-conditions",
		"terms_and_conditions", "i-agree", "i_agree", "conditions",
		"Contact0_AgreeTerms1", "Contact0_AgreeTerms", "agree",
	}},
	{CardType, []string{"cardtype"}},
	{CreditCard, []string{
		"creditcard", "credit_card", "credit-card", "cc_number", "cc-number",
		"cardnumber", "card_number", "card-number",
	}},
	{CardMonth, []string{"cardmonth"}},
	{CardYear, []string{"cardyear"}},
	{CCV, []string{
		"ccv", "ccv_id", "ccv-id", "cid", "card_id", "card-id", "card_ccv",
		"card_cid", "card-ccv", "card-cid", "ccv2", "card_code", "cc_code",
		"card-code", "cc-code", "CVVS", "cvv2", "cvv",
	}},
	{Initials, []string{"Contact0_Initials"}},
	{GrantType, []string{"Contact0_GrantType"}},
	{YearBorn, []string{"Contact0_YearBorn"}},
	{MaritalStatus, []string{"Contact0_MaritalStatus"}},
	{HouseholdIncome, []string{"Contact0_HouseholdIncome"}},
	{TimeCurrentResidence, []string{"Contact0_TimeCurrentResidence"}},
}

var index = mustBuildIndex(tables)

func mustBuildIndex(tables []aliasTable) map[string]Category {
	idx, err := buildIndex(tables)
	if err != nil {
		panic(err)
	}
	return idx
}

// buildIndex maps every folded alias to its category. An alias listed under
// two categories is rejected; repeats within one category are harmless.
func buildIndex(tables []aliasTable) (map[string]Category, error) {
	idx := make(map[string]Category)
	for _, t := range tables {
		for _, alias := range t.aliases {
			key := fold(alias)
			if key == "" {
				return nil, fmt.Errorf("form: empty alias in category %q", t.category)
			}
			if owner, ok := idx[key]; ok && owner != t.category {
				return nil, fmt.Errorf("%w: %q is listed under %q and %q", ErrAliasConflict, alias, owner, t.category)
			}
			idx[key] = t.category
		}
	}
	return idx, nil
}

// fold normalises a field name for case-insensitive lookup. A Caser holds
// state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Classify returns the category of a field name, ignoring case.
func Classify(name string) (Category, bool) {
	if name == "" {
		return "", false
	}
	c, ok := index[fold(name)]
	return c, ok
}

// Categories returns every category in priority order.
func Categories() []Category {
	out := make([]Category, len(tables))
	for i, t := range tables {
		out[i] = t.category
	}
	return out
}

// Aliases returns the field names recognised for c.
func Aliases(c Category) []string {
	for _, t := range tables {
		if t.category == c {
			return slices.Clone(t.aliases)
		}
	}
	return nil
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return slices.ContainsFunc(tables, func(t aliasTable) bool { return t.category == c })
}
