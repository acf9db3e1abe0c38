package ports

// RegionCatalog resolves the host's numeric geography identifiers into the
// codes the gateway expects. Implementations return the input unchanged when
// it is not a known identifier, so already-resolved values pass through.
type RegionCatalog interface {
	StateAbbreviation(id string) string
	CountryAlpha2(id string) string
}
