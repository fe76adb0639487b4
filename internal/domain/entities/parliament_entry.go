package entities

import "time"

// Construction categories offered by the admin form. The data layer does not
// enforce them.
const (
	ConstructionHospital    = "Hospital"
	ConstructionEstrada     = "Estrada"
	ConstructionBaseMilitar = "Base Militar"
	ConstructionEscola      = "Escola"
	ConstructionPorto       = "Porto"
)

var Constructions = []string{
	ConstructionHospital,
	ConstructionEstrada,
	ConstructionBaseMilitar,
	ConstructionEscola,
	ConstructionPorto,
}

// Resources is the cost bundle attached to every entry.
//
// Values are float64. Cash reaches the billions, where a double keeps 15-16
// significant digits; anything beyond that is rounded.
type Resources struct {
	Cash float64 `json:"cash"`
	Gold float64 `json:"gold"`
	BBL  float64 `json:"bbl"`
	KG   float64 `json:"kg"`
}

// Add returns the component-wise sum.
func (r Resources) Add(o Resources) Resources {
	return Resources{Cash: r.Cash + o.Cash, Gold: r.Gold + o.Gold, BBL: r.BBL + o.BBL, KG: r.KG + o.KG}
}

// Total sums the four components, used for day-over-day comparisons.
func (r Resources) Total() float64 {
	return r.Cash + r.Gold + r.BBL + r.KG
}

// ParliamentEntry is one recorded law together with its cost.
//
// Storage model:
//   - PK: id (uuid string, generated on create)
//   - resources flattened to cash/gold/bbl/kg columns
//
// Region matches an AutonomousRegion name by convention only.
type ParliamentEntry struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Law          string    `json:"law"`
	LawURL       *string   `json:"lawUrl"`
	Region       string    `json:"region"`
	Construction string    `json:"construction"`
	Resources    Resources `json:"resources"`
}

// ResourcesPatch carries a resources object as received. Absent components
// are nil and become zero when the patch is applied.
type ResourcesPatch struct {
	Cash *float64
	Gold *float64
	BBL  *float64
	KG   *float64
}

// Complete fills the missing components with zero.
func (p ResourcesPatch) Complete() Resources {
	return Resources{
		Cash: valueOrZero(p.Cash),
		Gold: valueOrZero(p.Gold),
		BBL:  valueOrZero(p.BBL),
		KG:   valueOrZero(p.KG),
	}
}

// ParliamentEntryPatch is a partial update. Only non-nil fields are written;
// ClearLawURL stores a null lawUrl.
type ParliamentEntryPatch struct {
	Date         *time.Time
	Law          *string
	LawURL       *string
	ClearLawURL  bool
	Region       *string
	Construction *string
	Resources    *Resources
}

func (p ParliamentEntryPatch) IsEmpty() bool {
	return p.Date == nil && p.Law == nil && p.LawURL == nil && !p.ClearLawURL && p.Region == nil &&
		p.Construction == nil && p.Resources == nil
}

// Apply merges the patch into e and returns the result.
func (p ParliamentEntryPatch) Apply(e ParliamentEntry) ParliamentEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Law != nil {
		e.Law = *p.Law
	}
	if p.ClearLawURL {
		e.LawURL = nil
	} else if p.LawURL != nil {
		e.LawURL = p.LawURL
	}
	if p.Region != nil {
		e.Region = *p.Region
	}
	if p.Construction != nil {
		e.Construction = *p.Construction
	}
	if p.Resources != nil {
		e.Resources = *p.Resources
	}
	return e
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
