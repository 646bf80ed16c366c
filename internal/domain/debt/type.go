package debt

// Type defines the closed set of debt categories
type Type string

const (
	TypeCreditCard   Type = "creditCard"
	TypePersonalLoan Type = "personalLoan"
	TypeMortgage     Type = "mortgage"
	TypeCarLoan      Type = "carLoan"
)

// AllTypes lists every valid debt category
var AllTypes = []Type{TypeCreditCard, TypePersonalLoan, TypeMortgage, TypeCarLoan}

// Valid reports whether t is one of the known categories
func (t Type) Valid() bool {
	switch t {
	case TypeCreditCard, TypePersonalLoan, TypeMortgage, TypeCarLoan:
		return true
	}
	return false
}

// DisplayName returns the human-readable label for the category
func (t Type) DisplayName() string {
	switch t {
	case TypeCreditCard:
		return "Credit Card"
	case TypePersonalLoan:
		return "Personal Loan"
	case TypeMortgage:
		return "Mortgage"
	case TypeCarLoan:
		return "Car Loan"
	}
	return string(t)
}

// Icon returns the presentation icon tag for the category. The tag is
// inert metadata for API clients and plays no part in ledger logic.
func (t Type) Icon() string {
	switch t {
	case TypeCreditCard:
		return "creditcard"
	case TypePersonalLoan:
		return "person"
	case TypeMortgage:
		return "house"
	case TypeCarLoan:
		return "car"
	}
	return ""
}

// Color returns the presentation color tag for the category
func (t Type) Color() string {
	switch t {
	case TypeCreditCard:
		return "blue"
	case TypePersonalLoan:
		return "green"
	case TypeMortgage:
		return "purple"
	case TypeCarLoan:
		return "orange"
	}
	return ""
}
