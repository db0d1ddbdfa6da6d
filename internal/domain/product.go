package domain

// Brand identifies a cochlear implant manufacturer
type Brand string

const (
	BrandCochlear        Brand = "Cochlear"
	BrandAdvancedBionics Brand = "Advanced Bionics"
	BrandMedEl           Brand = "Med-El"
)

// Brands lists the supported manufacturers in display order
var Brands = []Brand{BrandAdvancedBionics, BrandCochlear, BrandMedEl}

// Valid reports whether b is one of the supported manufacturers
func (b Brand) Valid() bool {
	switch b {
	case BrandCochlear, BrandAdvancedBionics, BrandMedEl:
		return true
	}
	return false
}

// CompatibilityUniversal is the sentinel tag matching every device series
const CompatibilityUniversal = "Universal"

// ColorOption is a selectable color variant with its swatch hex value
type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ProductOptions describes the variant axes a product exposes.
// Axes are optional; a nil slice means the product has no such axis.
type ProductOptions struct {
	Colors        []ColorOption `json:"colors,omitempty"`
	Sizes         []string      `json:"sizes,omitempty"`
	CoilStrengths []string      `json:"coilStrengths,omitempty"`
	Capacities    []string      `json:"capacities,omitempty"`
}

// Review is a single customer review attached to a product
type Review struct {
	ID       string  `json:"id"`
	Author   string  `json:"author"`
	Date     string  `json:"date"`
	Rating   float64 `json:"rating"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Verified bool    `json:"verified"`
}

// Product is a catalog entry. Prices are integer cents; catalog entries are
// immutable after load.
type Product struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	SalesHook          string            `json:"salesHook,omitempty"`
	LongDescription    string            `json:"longDescription,omitempty"`
	Features           []string          `json:"features,omitempty"`
	Specs              map[string]string `json:"specs,omitempty"`
	PriceCents         int64             `json:"priceCents"`
	OriginalPriceCents int64             `json:"originalPriceCents,omitempty"`
	Rating             float64           `json:"rating"`
	Reviews            int               `json:"reviews"`
	ReviewsList        []Review          `json:"reviewsList,omitempty"`
	Image              string            `json:"image"`
	Category           string            `json:"category"`
	Badge              string            `json:"badge,omitempty"`
	Compatibility      []string          `json:"compatibility"`
	HSAEligible        bool              `json:"isHsaEligible"`
	Bulk               bool              `json:"isBulk,omitempty"`
	UnitPrice          string            `json:"unitPrice,omitempty"`
	Options            *ProductOptions   `json:"options,omitempty"`
}

// CompatibleWith reports whether the product fits the given device series.
// The "Universal" tag matches any series.
func (p Product) CompatibleWith(series string) bool {
	for _, tag := range p.Compatibility {
		if tag == CompatibilityUniversal || tag == series {
			return true
		}
	}
	return false
}

// Universal reports whether the product carries the "Universal" tag
func (p Product) Universal() bool {
	for _, tag := range p.Compatibility {
		if tag == CompatibilityUniversal {
			return true
		}
	}
	return false
}

// DeviceModel is a sound processor model. Series is the tag referenced by
// Product.Compatibility.
type DeviceModel struct {
	ID          string `json:"id"`
	Brand       Brand  `json:"brand"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

// Category is a storefront shopping category
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SubTitle string `json:"subTitle"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

// BlogPost is an article shown on the home page
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Category string `json:"category"`
}
