package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRegion is returned when a region is not a catalog key.
var ErrUnknownRegion = errors.New("unknown region")

// Catalog is a closed, hand-curated whitelist of Indian states and their
// cities. It is the only geography the form surface may offer; membership
// outside it is impossible by construction. The catalog is independent of
// the locality encoder's trained vocabulary and may cover cities the model
// has never seen.
type Catalog struct {
	regions map[string][]string
}

// NewGeographyCatalog returns the built-in India catalog.
func NewGeographyCatalog() *Catalog {
	return &Catalog{regions: indianGeography}
}

// Regions returns all catalog regions sorted ascending.
func (c *Catalog) Regions() []string {
	out := make([]string, 0, len(c.regions))
	for r := range c.regions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// LocalitiesOf returns the region's localities sorted ascending.
func (c *Catalog) LocalitiesOf(region string) ([]string, error) {
	localities, ok := c.regions[region]
	if !ok {
		return nil, fmt.Errorf("localities of %q: %w", region, ErrUnknownRegion)
	}

	out := make([]string, len(localities))
	copy(out, localities)
	sort.Strings(out)
	return out, nil
}

// Contains reports whether locality belongs to region in the catalog.
func (c *Catalog) Contains(region, locality string) bool {
	localities, ok := c.regions[region]
	if !ok {
		return false
	}
	for _, l := range localities {
		if l == locality {
			return true
		}
	}
	return false
}

var indianGeography = map[string][]string{
	"Andhra Pradesh":    {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati"},
	"Arunachal Pradesh": {"Itanagar", "Tawang", "Naharlagun"},
	"Assam":             {"Guwahati", "Silchar", "Dibrugarh", "Jorhat"},
	"Bihar":             {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur"},
	"Chhattisgarh":      {"Raipur", "Bhilai", "Bilaspur"},
	"Goa":               {"Panaji", "Margao", "Vasco da Gama"},
	"Gujarat":           {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Gandhinagar"},
	"Haryana":           {"Gurugram", "Faridabad", "Panipat", "Ambala"},
	"Himachal Pradesh":  {"Shimla", "Manali", "Dharamshala"},
	"Jharkhand":         {"Ranchi", "Jamshedpur", "Dhanbad"},
	"Karnataka":         {"Bengaluru", "Mysuru", "Mangaluru", "Hubli", "Belagavi"},
	"Kerala":            {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur"},
	"Madhya Pradesh":    {"Indore", "Bhopal", "Jabalpur", "Gwalior"},
	"Maharashtra":       {"Mumbai", "Pune", "Nagpur", "Nashik", "Thane"},
	"Manipur":           {"Imphal", "Thoubal"},
	"Meghalaya":         {"Shillong", "Tura"},
	"Mizoram":           {"Aizawl", "Lunglei"},
	"Nagaland":          {"Dimapur", "Kohima"},
	"Odisha":            {"Bhubaneswar", "Cuttack", "Rourkela", "Puri"},
	"Punjab":            {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Chandigarh"},
	"Rajasthan":         {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer"},
	"Sikkim":            {"Gangtok", "Namchi"},
	"Tamil Nadu":        {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli"},
	"Telangana":         {"Hyderabad", "Warangal", "Nizamabad"},
	"Tripura":           {"Agartala", "Dharmanagar"},
	"Uttar Pradesh":     {"Lucknow", "Kanpur", "Varanasi", "Agra", "Noida"},
	"Uttarakhand":       {"Dehradun", "Haridwar", "Roorkee", "Rishikesh"},
	"West Bengal":       {"Kolkata", "Howrah", "Darjeeling", "Siliguri"},
	"Delhi":             {"New Delhi", "Delhi Cantonment"},
	"Jammu and Kashmir": {"Srinagar", "Jammu", "Anantnag"},
}
