package payment

import (
	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
)

// buildCustomer maps the bundle's contact fields into a gateway customer
// block. The block is attached only when a first name was submitted; the
// email keys are tried in priority order.
func buildCustomer(bundle models.RequestBundle, emailKeys ...string) *ports.CustomerDetails {
	if !bundle.Has(models.FieldFirstName) {
		return nil
	}
	return &ports.CustomerDetails{
		FirstName: bundle.Get(models.FieldFirstName),
		LastName:  bundle.Get(models.FieldLastName),
		Email:     bundle.FirstNonEmpty(emailKeys...),
	}
}

// buildBilling maps the bundle's billing fields into a gateway billing
// block, resolving the host's numeric state and country identifiers. The
// block is attached only when a billing first name was submitted.
func buildBilling(bundle models.RequestBundle, regions ports.RegionCatalog) *ports.AddressDetails {
	if !bundle.Has(models.FieldBillingFirstName) {
		return nil
	}
	return &ports.AddressDetails{
		FirstName:         bundle.Get(models.FieldBillingFirstName),
		LastName:          bundle.Get(models.FieldBillingLastName),
		StreetAddress:     bundle.Get(models.FieldBillingStreet),
		Locality:          bundle.Get(models.FieldBillingCity),
		Region:            regions.StateAbbreviation(bundle.Get(models.FieldBillingStateID)),
		PostalCode:        bundle.Get(models.FieldBillingPostal),
		CountryCodeAlpha2: regions.CountryAlpha2(bundle.Get(models.FieldBillingCountryID)),
	}
}
