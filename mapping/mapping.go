// Package mapping converts between the application's Product shape and the
// raw storage rows the persistence adapters read and write. The two deployed
// schemas name their columns differently (the MySQL tables use flattened
// lowercase names, the hosted backend uses snake_case), so every field is
// declared once in a static table carrying both column names, its value kind
// and its default. Both directions of the conversion consult only this table;
// anything not declared here never crosses the boundary in either direction.
package mapping

import (
	"encoding/json"
	"math"
	"time"

	"github.com/decorhaven/decorhaven-api/models"
	"github.com/google/uuid"
)

// Row is a raw storage record keyed by column name.
type Row map[string]any

// Profile selects which deployed schema's column names apply.
type Profile int

const (
	// ProfileMySQL is the local REST deployment: flattened lowercase
	// columns, array fields JSON-encoded into text.
	ProfileMySQL Profile = iota
	// ProfileHosted is the backend-as-a-service deployment: snake_case
	// columns, array fields carried as native JSON arrays.
	ProfileHosted
)

// Mode distinguishes create rows from update rows. Update rows never carry
// the identity or created-at columns; identity is the lookup key, supplied
// separately, and the creation timestamp is immutable.
type Mode int

const (
	Create Mode = iota
	Update
)

type kind int

const (
	kindString kind = iota
	kindFloat
	kindInt
	kindBool
	kindStrings
	kindTime
)

type fieldSpec struct {
	app      string
	mysql    string
	hosted   string
	kind     kind
	identity bool
	audit    bool
	read     func(p *models.Product) any
	write    func(p *models.Product, v any)
}

func (f fieldSpec) col(profile Profile) string {
	if profile == ProfileHosted {
		return f.hosted
	}
	return f.mysql
}

// fields is the complete mapping table. Note the custom-flag column: the two
// deployed schemas genuinely disagree on its name (allowcustomname vs
// allow_customization) and are kept as-is rather than unified.
var fields = []fieldSpec{
	{
		app: "id", mysql: "id", hosted: "id", kind: kindString, identity: true,
		read:  func(p *models.Product) any { return p.ID },
		write: func(p *models.Product, v any) { p.ID = v.(string) },
	},
	{
		app: "name", mysql: "name", hosted: "name", kind: kindString,
		read:  func(p *models.Product) any { return p.Name },
		write: func(p *models.Product, v any) { p.Name = v.(string) },
	},
	{
		app: "description", mysql: "description", hosted: "description", kind: kindString,
		read:  func(p *models.Product) any { return p.Description },
		write: func(p *models.Product, v any) { p.Description = v.(string) },
	},
	{
		app: "price", mysql: "price", hosted: "price", kind: kindFloat,
		read:  func(p *models.Product) any { return p.Price },
		write: func(p *models.Product, v any) { p.Price = v.(float64) },
	},
	{
		app: "category", mysql: "category", hosted: "category", kind: kindString,
		read:  func(p *models.Product) any { return p.Category },
		write: func(p *models.Product, v any) { p.Category = v.(string) },
	},
	{
		app: "stock", mysql: "stock", hosted: "stock", kind: kindInt,
		read:  func(p *models.Product) any { return p.Stock },
		write: func(p *models.Product, v any) { p.Stock = v.(int) },
	},
	{
		app: "imageUrl", mysql: "imageurl", hosted: "image_url", kind: kindString,
		read:  func(p *models.Product) any { return p.ImageURL },
		write: func(p *models.Product, v any) { p.ImageURL = v.(string) },
	},
	{
		app: "discount", mysql: "discount", hosted: "discount", kind: kindInt,
		read:  func(p *models.Product) any { return p.Discount },
		write: func(p *models.Product, v any) { p.Discount = v.(int) },
	},
	{
		app: "featured", mysql: "featured", hosted: "featured", kind: kindBool,
		read:  func(p *models.Product) any { return p.Featured },
		write: func(p *models.Product, v any) { p.Featured = v.(bool) },
	},
	{
		app: "descriptionImages", mysql: "descriptionimages", hosted: "description_images", kind: kindStrings,
		read:  func(p *models.Product) any { return p.DescriptionImages },
		write: func(p *models.Product, v any) { p.DescriptionImages = v.([]string) },
	},
	{
		app: "specificationImages", mysql: "specificationimages", hosted: "specification_images", kind: kindStrings,
		read:  func(p *models.Product) any { return p.SpecificationImages },
		write: func(p *models.Product, v any) { p.SpecificationImages = v.([]string) },
	},
	{
		app: "deliveryImages", mysql: "deliveryimages", hosted: "delivery_images", kind: kindStrings,
		read:  func(p *models.Product) any { return p.DeliveryImages },
		write: func(p *models.Product, v any) { p.DeliveryImages = v.([]string) },
	},
	{
		app: "allowCustomization", mysql: "allowcustomname", hosted: "allow_customization", kind: kindBool,
		read:  func(p *models.Product) any { return p.AllowCustomization },
		write: func(p *models.Product, v any) { p.AllowCustomization = v.(bool) },
	},
	{
		app: "colors", mysql: "colors", hosted: "colors", kind: kindStrings,
		read:  func(p *models.Product) any { return p.Colors },
		write: func(p *models.Product, v any) { p.Colors = v.([]string) },
	},
	{
		app: "createdAt", mysql: "createdat", hosted: "created_at", kind: kindTime, audit: true,
		read:  func(p *models.Product) any { return p.CreatedAt },
		write: func(p *models.Product, v any) { p.CreatedAt = v.(time.Time) },
	},
}

// Columns returns the full column list for a profile, for SELECTs.
func Columns(profile Profile) []string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.col(profile))
	}
	return cols
}

// Column resolves an application field name to its storage column for the
// given profile. Unknown field names resolve to "".
func Column(app string, profile Profile) string {
	for _, f := range fields {
		if f.app == app {
			return f.col(profile)
		}
	}
	return ""
}

// ToRow maps a Product onto a storage row for the given profile. In Create
// mode a missing identity is generated and a zero created-at is stamped with
// the current time; in Update mode the identity and created-at columns are
// omitted entirely. Optional fields never come out absent: booleans are
// false, numerics 0 and array fields empty.
func ToRow(p models.Product, profile Profile, mode Mode) Row {
	if mode == Create {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
		}
	}

	row := Row{}
	for _, f := range fields {
		if mode == Update && (f.identity || f.audit) {
			continue
		}
		col := f.col(profile)
		switch f.kind {
		case kindString:
			row[col] = f.read(&p).(string)
		case kindFloat:
			v := f.read(&p).(float64)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			row[col] = v
		case kindInt:
			row[col] = f.read(&p).(int)
		case kindBool:
			row[col] = f.read(&p).(bool)
		case kindStrings:
			v := f.read(&p).([]string)
			if v == nil {
				v = []string{}
			}
			if profile == ProfileMySQL {
				b, _ := json.Marshal(v)
				row[col] = string(b)
			} else {
				row[col] = v
			}
		case kindTime:
			row[col] = f.read(&p).(time.Time)
		}
	}
	return row
}

// FromRow maps a raw storage row back onto a fully-populated Product.
// Every coercion is total: unparsable numerics become 0, stored truthy
// values become true, a malformed JSON array column degrades to an empty
// slice for that field alone (logged, the rest of the row still maps), and
// a missing created-at becomes the current time.
func FromRow(row Row, profile Profile) models.Product {
	var p models.Product
	for _, f := range fields {
		raw := row[f.col(profile)]
		switch f.kind {
		case kindString:
			f.write(&p, asString(raw))
		case kindFloat:
			f.write(&p, asFloat(raw))
		case kindInt:
			f.write(&p, asInt(raw))
		case kindBool:
			f.write(&p, asBool(raw))
		case kindStrings:
			f.write(&p, asStrings(raw, f.col(profile)))
		case kindTime:
			f.write(&p, asTime(raw))
		}
	}
	return p
}
