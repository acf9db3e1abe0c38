package geo

// StaticCatalog resolves the host CRM's numeric geography identifiers into
// the region abbreviations and ISO alpha-2 country codes the gateway wants.
// Values that are not known identifiers pass through unchanged, so callers
// can hand in already-resolved codes.
type StaticCatalog struct{}

// NewStaticCatalog returns the built-in catalog
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

// US states and DC keyed by the host's state_province id
var stateAbbreviations = map[string]string{
	"1000": "AL", "1001": "AK", "1002": "AZ", "1003": "AR",
	"1004": "CA", "1005": "CO", "1006": "CT", "1007": "DE",
	"1008": "DC", "1009": "FL", "1010": "GA", "1011": "HI",
	"1012": "ID", "1013": "IL", "1014": "IN", "1015": "IA",
	"1016": "KS", "1017": "KY", "1018": "LA", "1019": "ME",
	"1020": "MD", "1021": "MA", "1022": "MI", "1023": "MN",
	"1024": "MS", "1025": "MO", "1026": "MT", "1027": "NE",
	"1028": "NV", "1029": "NH", "1030": "NJ", "1031": "NM",
	"1032": "NY", "1033": "NC", "1034": "ND", "1035": "OH",
	"1036": "OK", "1037": "OR", "1038": "PA", "1039": "RI",
	"1040": "SC", "1041": "SD", "1042": "TN", "1043": "TX",
	"1044": "UT", "1045": "VT", "1046": "VA", "1047": "WA",
	"1048": "WV", "1049": "WI", "1050": "WY",
}

// Countries the bridge is deployed against, keyed by the host's country id
var countryCodes = map[string]string{
	"1013": "AU",
	"1039": "CA",
	"1076": "FR",
	"1082": "DE",
	"1101": "IN",
	"1140": "MX",
	"1226": "GB",
	"1228": "US",
}

// StateAbbreviation resolves a host state_province id
func (c *StaticCatalog) StateAbbreviation(id string) string {
	if abbr, ok := stateAbbreviations[id]; ok {
		return abbr
	}
	return id
}

// CountryAlpha2 resolves a host country id
func (c *StaticCatalog) CountryAlpha2(id string) string {
	if code, ok := countryCodes[id]; ok {
		return code
	}
	return id
}
